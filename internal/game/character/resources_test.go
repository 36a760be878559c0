package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestModifyGold_CapDiscardsExcess(t *testing.T) {
	c := newChar(t)
	assert.Equal(t, 10, c.ModifyGold(25))
	assert.Equal(t, 4, c.ModifyGold(-6))
	assert.Equal(t, 0, c.ModifyGold(-100))
}

func TestIncreaseMaxGold_DoesNotGrantGold(t *testing.T) {
	c := newChar(t)
	c.ModifyGold(7)
	assert.Equal(t, 25, c.IncreaseMaxGold(15))
	assert.Equal(t, 7, c.Gold)
	assert.Equal(t, 25, c.IncreaseMaxGold(-3))
}

func TestRestoreResources(t *testing.T) {
	c := newChar(t)
	c.ModifyHealth(-4)
	c.ModifyStamina(-9)
	c.RestoreResources()
	assert.Equal(t, c.MaxHealth, c.Health)
	assert.Equal(t, c.MaxStamina, c.Stamina)
}

func TestNormalize_ClampsRestoredValues(t *testing.T) {
	c := newChar(t)
	c.Health = 500
	c.Stamina = -3
	c.Gold = 99
	c.Level = 0
	c.ExperienceToNextLevel = 0
	c.Normalize()
	assert.Equal(t, c.MaxHealth, c.Health)
	assert.Equal(t, 0, c.Stamina)
	assert.Equal(t, c.MaxGold, c.Gold)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 100, c.ExperienceToNextLevel)
}

func TestProperty_ResourcesAlwaysClamped(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := newChar(rt)
		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 60).Draw(rt, "ops")
		for i, op := range ops {
			delta := rapid.IntRange(-1000, 1000).Draw(rt, "delta")
			switch op {
			case 0:
				c.ModifyHealth(delta)
			case 1:
				c.ModifyStamina(delta)
			case 2:
				c.ModifyGold(delta)
			case 3:
				c.IncreaseMaxGold(rapid.IntRange(0, 50).Draw(rt, "cap"))
			}
			assert.GreaterOrEqual(rt, c.Health, 0, "op %d", i)
			assert.LessOrEqual(rt, c.Health, c.MaxHealth, "op %d", i)
			assert.GreaterOrEqual(rt, c.Stamina, 0, "op %d", i)
			assert.LessOrEqual(rt, c.Stamina, c.MaxStamina, "op %d", i)
			assert.GreaterOrEqual(rt, c.Gold, 0, "op %d", i)
			assert.LessOrEqual(rt, c.Gold, c.MaxGold, "op %d", i)
		}
	})
}
