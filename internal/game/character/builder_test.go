package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wonders/internal/game/character"
)

func TestNew_BaseValues(t *testing.T) {
	c, err := character.New("  Ada  ", character.ClassUrchin)
	require.NoError(t, err)

	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, character.ClassUrchin, c.Class)
	assert.Equal(t, character.BaseStats(), c.Stats)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.Experience)
	assert.Equal(t, 100, c.ExperienceToNextLevel)
	assert.Equal(t, 10, c.MaxHealth)
	assert.Equal(t, 10, c.Health)
	assert.Equal(t, 10, c.MaxStamina)
	assert.Equal(t, 10, c.Stamina)
	assert.Equal(t, 0, c.Gold)
	assert.Equal(t, 10, c.MaxGold)
}

func TestNew_EmptyNameRejected(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := character.New(name, character.ClassWaif)
		assert.ErrorIs(t, err, character.ErrEmptyName, "name %q", name)
	}
}

func TestNew_UnknownClassRejected(t *testing.T) {
	_, err := character.New("Ada", character.Class("Paladin"))
	assert.Error(t, err)
}

func TestNew_UnsetClassAllowed(t *testing.T) {
	c, err := character.New("Ada", character.ClassNone)
	require.NoError(t, err)
	assert.Equal(t, character.ClassNone, c.Class)
}

func TestProperty_New_ResourcesFull(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,15}`).Draw(rt, "name")
		class := rapid.SampledFrom([]character.Class{character.ClassNone, character.ClassUrchin, character.ClassWaif}).Draw(rt, "class")
		c, err := character.New(name, class)
		require.NoError(rt, err)
		assert.Equal(rt, c.MaxHealth, c.Health)
		assert.Equal(rt, c.MaxStamina, c.Stamina)
		assert.Equal(rt, c.Stats.Vitality*character.ResourcePerStat, c.MaxHealth)
		assert.Equal(rt, c.Stats.Endurance*character.ResourcePerStat, c.MaxStamina)
	})
}
