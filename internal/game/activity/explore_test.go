package activity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wonders/internal/game/activity"
	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/dice"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

func TestExplorationEvents_Pools(t *testing.T) {
	assert.Len(t, activity.ExplorationEvents(location.CitySquare), 5)
	assert.Len(t, activity.ExplorationEvents(location.Market), 4)
	assert.Len(t, activity.ExplorationEvents(location.Harbor), 4)
	assert.Len(t, activity.ExplorationEvents(location.Gardens), 2)
	assert.Len(t, activity.ExplorationEvents("atlantis"), 2)
}

// TestExplore_DrainsStaminaThenFails walks a level-1 character (max stamina
// 10) through ten explorations and checks the eleventh is refused.
func TestExplore_DrainsStaminaThenFails(t *testing.T) {
	c := newCharacter(t, character.ClassUrchin)
	reg := newRegistry()
	roll := &scriptedRoller{}
	require.Equal(t, 10, c.MaxStamina)

	for i := 0; i < 10; i++ {
		res := activity.Explore(c, reg, roll)
		require.True(t, res.Success, "exploration %d", i+1)
		assert.Equal(t, -1, res.Deltas.Stamina)
	}
	assert.Equal(t, 0, c.Stamina)

	before := *c
	states, current := reg.Export()
	res := activity.Explore(c, reg, roll)
	assert.False(t, res.Success)
	assert.False(t, res.Mutated)
	assert.Equal(t, activity.ReasonInsufficientStamina, res.Reason)
	assert.Equal(t, before, *c)
	gotStates, gotCurrent := reg.Export()
	assert.Equal(t, states, gotStates)
	assert.Equal(t, current, gotCurrent)
}

func TestExplore_LocationEventRespectsGoldCap(t *testing.T) {
	c := newCharacter(t, character.ClassWaif)
	reg := newRegistry()
	travelTo(t, reg, location.Market)

	res := activity.Explore(c, reg, &scriptedRoller{below: []int{3}})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "delivering a package")
	assert.Equal(t, 10, c.Gold, "12 gold is capped at max gold 10")
	assert.Equal(t, 10, res.Deltas.Gold)
	assert.Equal(t, 5, res.Deltas.Experience)
	assert.Equal(t, 5, c.Experience)
}

func TestExplore_FlavorEventHasNoEffect(t *testing.T) {
	c := newCharacter(t, character.ClassWaif)
	reg := newRegistry()
	res := activity.Explore(c, reg, &scriptedRoller{below: []int{1}})
	require.True(t, res.Success)
	assert.Equal(t, activity.Deltas{Stamina: -1}, res.Deltas)
}

func TestExplore_LevelUp(t *testing.T) {
	c := newCharacter(t, character.ClassWaif)
	c.Experience = 95
	reg := newRegistry()

	res := activity.Explore(c, reg, &scriptedRoller{below: []int{2}})
	require.True(t, res.Success)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 5, c.Experience)
	assert.Equal(t, c.MaxStamina, c.Stamina)
	assert.Contains(t, res.Events, "You gained a level! Your abilities have improved.")
}

func TestExplore_Discovery(t *testing.T) {
	c := newCharacter(t, character.ClassWaif)
	reg := newRegistry()

	res := activity.Explore(c, reg, &scriptedRoller{below: []int{0, 1}, chance: []bool{true}})
	require.True(t, res.Success)
	require.NotNil(t, res.Discovered)
	assert.Equal(t, location.Harbor, res.Discovered.ID)
	assert.Equal(t, location.Discovery{Discovered: true}, reg.State(location.Harbor))
	assert.Contains(t, res.Events, "You discovered a new area: Harbor!")
	assert.Equal(t, location.CitySquare, reg.Current().ID)
}

func TestExplore_NoCharacter(t *testing.T) {
	res := activity.Explore(nil, newRegistry(), &scriptedRoller{})
	assert.Equal(t, activity.ReasonNoCharacter, res.Reason)
}

func TestDiscoverNewLocation_Exhaustion(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := newRegistry()
		roll := dice.NewLoggedRoller(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), zaptest.NewLogger(t))
		cat := reg.Catalog()

		seen := map[location.ID]bool{cat.Start().ID: true}
		for i := 0; i < cat.Len()-1; i++ {
			found := activity.DiscoverNewLocation(reg, roll)
			require.NotNil(rt, found)
			assert.False(rt, seen[found.ID], "%q discovered twice", found.ID)
			seen[found.ID] = true
		}
		assert.Len(rt, seen, cat.Len())

		states, current := reg.Export()
		assert.Nil(rt, activity.DiscoverNewLocation(reg, roll))
		gotStates, gotCurrent := reg.Export()
		assert.Equal(rt, states, gotStates)
		assert.Equal(rt, current, gotCurrent)
	})
}
