package activity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wonders/internal/game/activity"
	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/dice"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

func TestBeg_ClassGate(t *testing.T) {
	urchin := newCharacter(t, character.ClassUrchin)
	res := activity.Beg(urchin, newRegistry(), &scriptedRoller{})
	assert.Equal(t, activity.ReasonClassRestricted, res.Reason)

	for _, class := range []character.Class{character.ClassWaif, character.ClassNone} {
		res := activity.Beg(newCharacter(t, class), newRegistry(), &scriptedRoller{})
		assert.True(t, res.Success, "class %q", class)
	}
}

func TestPickPocket_ClassGate(t *testing.T) {
	waif := newCharacter(t, character.ClassWaif)
	before := *waif
	res := activity.PickPocket(waif, newRegistry(), &scriptedRoller{})
	assert.Equal(t, activity.ReasonClassRestricted, res.Reason)
	assert.Equal(t, before, *waif)

	res = activity.PickPocket(newCharacter(t, character.ClassUrchin), newRegistry(), &scriptedRoller{})
	assert.True(t, res.Success)
}

func TestBeg_MessageVariesWithExperience(t *testing.T) {
	c := newCharacter(t, character.ClassWaif)
	res := activity.Beg(c, newRegistry(), &scriptedRoller{below: []int{1, 0}})
	require.True(t, res.Success)
	assert.Equal(t, "You hold out your hands and passers-by spare you 1 gold.", res.Message)

	res = activity.Beg(c, newRegistry(), &scriptedRoller{below: []int{1, 1}})
	require.True(t, res.Success)
	assert.Contains(t, res.Message, "(+1 XP)")
	assert.Equal(t, 2, c.Gold)
	assert.Equal(t, 1, c.Experience)
	assert.Equal(t, 8, c.Stamina)
}

func TestPickPocket_MessageReportsGoldAfterCap(t *testing.T) {
	c := newCharacter(t, character.ClassUrchin)
	c.ModifyGold(c.MaxGold - 1)
	res := activity.PickPocket(c, newRegistry(), &scriptedRoller{below: []int{3, 0}})
	require.True(t, res.Success)
	assert.Equal(t, c.MaxGold, c.Gold)
	assert.Equal(t, "You lift 1 gold from an unwary purse.", res.Message)
	assert.Equal(t, 1, res.Deltas.Gold)

	res = activity.PickPocket(c, newRegistry(), &scriptedRoller{below: []int{3, 1}})
	require.True(t, res.Success)
	assert.Equal(t, "You lift 0 gold from an unwary purse. Your fingers grow quicker. (+1 XP)", res.Message)
	assert.Equal(t, c.MaxGold, c.Gold)
}

func TestPickPocket_Exhausted(t *testing.T) {
	c := newCharacter(t, character.ClassUrchin)
	c.ModifyStamina(-c.MaxStamina)
	before := *c
	res := activity.PickPocket(c, newRegistry(), &scriptedRoller{})
	assert.Equal(t, activity.ReasonInsufficientStamina, res.Reason)
	assert.Equal(t, before, *c)
}

func TestScrounge_NotPermittedInGardens(t *testing.T) {
	c := newCharacter(t, character.ClassWaif)
	reg := newRegistry()
	travelTo(t, reg, location.Gardens)
	res := activity.Beg(c, reg, &scriptedRoller{})
	assert.Equal(t, activity.ReasonNotPermitted, res.Reason)
}

func TestProperty_Scrounge_RewardBounds(t *testing.T) {
	roll := dice.NewLoggedRoller(dice.NewSeededSource(42), zap.NewNop())
	rapid.Check(t, func(rt *rapid.T) {
		urchin := rapid.Bool().Draw(rt, "urchin")
		class, bound, act := character.ClassWaif, activity.BegGoldBound, activity.Beg
		if urchin {
			class, bound, act = character.ClassUrchin, activity.PickPocketGoldBound, activity.PickPocket
		}
		c := newCharacter(rt, class)
		c.IncreaseMaxGold(100)

		res := act(c, newRegistry(), roll)
		require.True(rt, res.Success)
		assert.Equal(rt, -activity.ScroungeCost, res.Deltas.Stamina)
		assert.GreaterOrEqual(rt, res.Deltas.Gold, 0)
		assert.Less(rt, res.Deltas.Gold, bound)
		assert.GreaterOrEqual(rt, res.Deltas.Experience, 0)
		assert.Less(rt, res.Deltas.Experience, activity.ScroungeExperienceBound)
	})
}
