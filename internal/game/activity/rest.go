package activity

import (
	"fmt"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

// RestAmount is the nominal stamina restored by resting.
const RestAmount = 5

// Rest restores up to RestAmount stamina.
//
// Postcondition: Deltas.Stamina == min(RestAmount, MaxStamina - previous);
// a fully rested character fails with ReasonAlreadyRested and no mutation.
func Rest(c *character.Character, reg *location.Registry) Result {
	res, ok := gate(c, reg, location.ActionRest)
	if !ok {
		return res
	}
	if c.Stamina >= c.MaxStamina {
		return fail(location.ActionRest, ReasonAlreadyRested, "You are already fully rested!")
	}
	before := *c
	c.ModifyStamina(RestAmount)
	res.settle(before, c, 0)
	res.logf(fmt.Sprintf("You rested and recovered some stamina. (+%d Stamina)", res.Deltas.Stamina))
	res.Success = true
	res.Mutated = true
	res.Message = "You feel refreshed!"
	return res
}
