package activity

import (
	"fmt"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

const (
	// ExploreCost is the stamina spent per exploration.
	ExploreCost = 1
	// DiscoveryChance is the probability an exploration reveals a new location.
	DiscoveryChance = 0.1
)

// Explore spends stamina, applies one random event from the current
// location's pool, and may reveal an undiscovered location.
//
// Postcondition: on failure c and reg are unchanged.
func Explore(c *character.Character, reg *location.Registry, roll Roller) Result {
	res, ok := gate(c, reg, location.ActionExplore)
	if !ok {
		return res
	}
	if c.Stamina < ExploreCost {
		res = fail(location.ActionExplore, ReasonInsufficientStamina, "Not enough stamina to explore!")
		res.logf("You are too tired to explore. Rest to regain stamina.")
		return res
	}

	before := *c
	c.ModifyStamina(-ExploreCost)
	res.logf(fmt.Sprintf("You spend stamina to explore. (-%d Stamina)", ExploreCost))

	pool := ExplorationEvents(reg.Current().ID)
	ev := pool[roll.Below("explore event", len(pool))]
	out := ev.Effect(c)
	res.logf(ev.Message)
	if out.LeveledUp {
		res.LeveledUp = true
		res.logf(LevelUpMessage)
	}

	if roll.Chance("discovery", DiscoveryChance) {
		if found := DiscoverNewLocation(reg, roll); found != nil {
			res.Discovered = found
			res.logf(DiscoveryMessage(found))
		}
	}

	res.settle(before, c, out.Experience)
	res.Success = true
	res.Mutated = true
	res.Message = ev.Message
	return res
}

// DiscoverNewLocation reveals one undiscovered catalog location chosen
// uniformly at random.
//
// Postcondition: returns nil with no mutation once every location is discovered.
func DiscoverNewLocation(reg *location.Registry, roll Roller) *location.Location {
	candidates := reg.Undiscovered()
	if len(candidates) == 0 {
		return nil
	}
	pick := candidates[roll.Below("discovery target", len(candidates))]
	found, _ := reg.Discover(pick.ID)
	return found
}
