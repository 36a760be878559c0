package activity

import (
	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

// Outcome is what an exploration event did to the character.
type Outcome struct {
	Gold       int
	Experience int
	LeveledUp  bool
}

// Effect applies an exploration event to c.
type Effect func(c *character.Character) Outcome

// Event is one possible result of exploring.
type Event struct {
	Message string
	Effect  Effect
}

func gainGold(n int) Effect {
	return func(c *character.Character) Outcome {
		before := c.Gold
		c.ModifyGold(n)
		return Outcome{Gold: c.Gold - before}
	}
}

func gainExperience(n int) Effect {
	return func(c *character.Character) Outcome {
		return Outcome{Experience: n, LeveledUp: c.AddExperience(n)}
	}
}

func gainBoth(gold, xp int) Effect {
	g, x := gainGold(gold), gainExperience(xp)
	return func(c *character.Character) Outcome {
		out := x(c)
		out.Gold = g(c).Gold
		return out
	}
}

func flavor() Effect {
	return func(*character.Character) Outcome { return Outcome{} }
}

// baseEvents can happen anywhere.
var baseEvents = []Event{
	{Message: "You found some old coins in a fountain! +5 gold", Effect: gainGold(5)},
	{Message: "You encountered a friendly merchant who shared city gossip.", Effect: flavor()},
}

// locationEvents are added to baseEvents at their location.
var locationEvents = map[location.ID][]Event{
	location.CitySquare: {
		{Message: "You helped a city guard catch a pickpocket and earned their gratitude. +10 XP", Effect: gainExperience(10)},
		{Message: "You found a torn page from an ancient book with cryptic writings. +5 XP", Effect: gainExperience(5)},
		{Message: "A street performer shared a tale of the city's history with you. +8 XP", Effect: gainExperience(8)},
	},
	location.Market: {
		{Message: "You found a discarded item that might be valuable! +8 gold", Effect: gainGold(8)},
		{Message: "A merchant offered you a small job delivering a package. +12 gold, +5 XP", Effect: gainBoth(12, 5)},
	},
	location.Harbor: {
		{Message: "You helped unload a cargo ship and earned some coin. +15 gold, +8 XP", Effect: gainBoth(15, 8)},
		{Message: "A sailor shared tales of the sea with you. +10 XP", Effect: gainExperience(10)},
	},
}

// ExplorationEvents returns the event pool for a location: the base events
// followed by that location's own events. Unknown locations get the base pool.
//
// Postcondition: the returned slice is a fresh copy with len >= len(baseEvents).
func ExplorationEvents(id location.ID) []Event {
	pool := make([]Event, 0, len(baseEvents)+len(locationEvents[id]))
	pool = append(pool, baseEvents...)
	return append(pool, locationEvents[id]...)
}
