// Package activity computes the outcome of player actions.
//
// Every function here takes the state it works on as arguments and mutates
// the Character only through its clamped methods. A failed activity leaves
// every argument untouched.
package activity

import (
	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

// Reason classifies why an activity failed.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonNoCharacter         Reason = "no_character"
	ReasonInvalidName         Reason = "invalid_name"
	ReasonInvalidClass        Reason = "invalid_class"
	ReasonInsufficientStamina Reason = "insufficient_stamina"
	ReasonAlreadyRested       Reason = "already_rested"
	ReasonUndiscovered        Reason = "undiscovered"
	ReasonNotPermitted        Reason = "not_permitted"
	ReasonClassRestricted     Reason = "class_restricted"
	ReasonNotImplemented      Reason = "not_implemented"
	ReasonUnknownItem         Reason = "unknown_item"
	ReasonAlreadyOwned        Reason = "already_owned"
	ReasonMissingRequirement  Reason = "missing_requirement"
	ReasonInsufficientGold    Reason = "insufficient_gold"
)

// LevelUpMessage is logged whenever an activity grants a level.
const LevelUpMessage = "You gained a level! Your abilities have improved."

// DiscoveryMessage is logged when l is revealed.
func DiscoveryMessage(l *location.Location) string {
	return "You discovered a new area: " + l.Name + "!"
}

// Roller is the randomness an activity draws on.
type Roller interface {
	// Below returns a uniform int in [0, bound).
	Below(purpose string, bound int) int
	// Chance reports whether a uniform [0, 1) draw falls below p.
	Chance(purpose string, p float64) bool
}

// Deltas are the net resource changes an activity caused.
type Deltas struct {
	Health     int
	Stamina    int
	Gold       int
	Experience int
}

// Result describes the outcome of one activity.
type Result struct {
	Action  location.Action
	Success bool
	Reason  Reason
	Message string
	// Mutated reports whether game state changed and should be saved.
	Mutated bool
	Deltas  Deltas
	// LeveledUp is set when the activity granted a level.
	LeveledUp bool
	// Discovered is the location revealed during the activity, if any.
	Discovered *location.Location
	// Events are log lines in the order they happened.
	Events []string
	// Offers is filled by Trade.
	Offers []Offer
}

func fail(action location.Action, reason Reason, msg string) Result {
	return Result{Action: action, Reason: reason, Message: msg}
}

func (r *Result) logf(line string) {
	r.Events = append(r.Events, line)
}

// settle records the net resource change between before and c.
// Experience is reported as gained experience, which stays meaningful
// across a level-up where the stored value is reduced by the threshold.
func (r *Result) settle(before character.Character, c *character.Character, xpGained int) {
	r.Deltas = Deltas{
		Health:     c.Health - before.Health,
		Stamina:    c.Stamina - before.Stamina,
		Gold:       c.Gold - before.Gold,
		Experience: xpGained,
	}
}

// gate applies the checks shared by every activity that needs a character
// at a location permitting action. ok is false when res is a failure.
func gate(c *character.Character, reg *location.Registry, action location.Action) (res Result, ok bool) {
	if c == nil {
		return fail(action, ReasonNoCharacter, "Create a character first."), false
	}
	here := reg.Current()
	if !here.Permits(action) {
		return fail(action, ReasonNotPermitted, "You can't "+string(action)+" in "+here.Name+"."), false
	}
	return Result{Action: action}, true
}
