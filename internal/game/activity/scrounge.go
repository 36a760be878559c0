package activity

import (
	"fmt"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

const (
	// ScroungeCost is the stamina spent begging or pick-pocketing.
	ScroungeCost = 1
	// BegGoldBound is the exclusive upper bound of gold from begging.
	BegGoldBound = 2
	// PickPocketGoldBound is the exclusive upper bound of gold from pick-pocketing.
	PickPocketGoldBound = 4
	// ScroungeExperienceBound is the exclusive upper bound of experience from either.
	ScroungeExperienceBound = 2
)

// scrounge describes a low-stakes street action.
type scrounge struct {
	action    location.Action
	goldBound int
	classes   []character.Class
	tired     string
	gained    string // format: gold
	learned   string // format: gold, xp
}

var begging = scrounge{
	action:    location.ActionBeg,
	goldBound: BegGoldBound,
	classes:   []character.Class{character.ClassWaif, character.ClassNone},
	tired:     "You are too tired to beg.",
	gained:    "You hold out your hands and passers-by spare you %d gold.",
	learned:   "You hold out your hands and passers-by spare you %d gold. You learn which faces are kind. (+%d XP)",
}

var pickPocketing = scrounge{
	action:    location.ActionPickPocket,
	goldBound: PickPocketGoldBound,
	classes:   []character.Class{character.ClassUrchin},
	tired:     "You are too tired to pick pockets.",
	gained:    "You lift %d gold from an unwary purse.",
	learned:   "You lift %d gold from an unwary purse. Your fingers grow quicker. (+%d XP)",
}

func (s scrounge) allows(class character.Class) bool {
	for _, c := range s.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Beg spends stamina for a little gold and maybe a little experience.
// Available to Waifs and classless characters.
func Beg(c *character.Character, reg *location.Registry, roll Roller) Result {
	return begging.perform(c, reg, roll)
}

// PickPocket spends stamina for some gold and maybe a little experience.
// Available to Urchins.
func PickPocket(c *character.Character, reg *location.Registry, roll Roller) Result {
	return pickPocketing.perform(c, reg, roll)
}

func (s scrounge) perform(c *character.Character, reg *location.Registry, roll Roller) Result {
	res, ok := gate(c, reg, s.action)
	if !ok {
		return res
	}
	if !s.allows(c.Class) {
		return fail(s.action, ReasonClassRestricted, fmt.Sprintf("Your upbringing did not teach you to %s.", s.action))
	}
	if c.Stamina < ScroungeCost {
		return fail(s.action, ReasonInsufficientStamina, s.tired)
	}

	before := *c
	c.ModifyStamina(-ScroungeCost)
	gold := roll.Below(string(s.action)+" gold", s.goldBound)
	xp := roll.Below(string(s.action)+" experience", ScroungeExperienceBound)
	c.ModifyGold(gold)
	if c.AddExperience(xp) {
		res.LeveledUp = true
	}

	// The gold cap may absorb part of the roll.
	gained := c.Gold - before.Gold
	if xp > 0 {
		res.Message = fmt.Sprintf(s.learned, gained, xp)
	} else {
		res.Message = fmt.Sprintf(s.gained, gained)
	}
	res.logf(res.Message)
	if res.LeveledUp {
		res.logf(LevelUpMessage)
	}
	res.settle(before, c, xp)
	res.Success = true
	res.Mutated = true
	return res
}
