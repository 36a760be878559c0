package activity

import (
	"fmt"

	"github.com/cory-johannsen/wonders/internal/game/location"
)

// ActionTravel labels results of ChangeLocation; it is not a location verb.
const ActionTravel location.Action = "travel"

// ChangeLocation moves the player to a discovered location.
//
// Postcondition: fails with ReasonUndiscovered and no mutation unless id is
// a discovered catalog location.
func ChangeLocation(reg *location.Registry, id location.ID) Result {
	if !reg.ChangeLocation(id) {
		return fail(ActionTravel, ReasonUndiscovered, "You don't know the way there.")
	}
	dest := reg.Current()
	res := Result{Action: ActionTravel, Success: true, Mutated: true}
	res.Message = fmt.Sprintf("You travel to %s.", dest.Name)
	res.logf(res.Message)
	return res
}

// Study is listed at the academy but has no rules yet.
func Study(reg *location.Registry) Result {
	here := reg.Current()
	if !here.Permits(location.ActionStudy) {
		return fail(location.ActionStudy, ReasonNotPermitted, "There is nothing to study in "+here.Name+".")
	}
	return fail(location.ActionStudy, ReasonNotImplemented, "The academy's doors are closed to newcomers for now.")
}
