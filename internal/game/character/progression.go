package character

// levelUpGrowth is the threshold multiplier applied on every level-up.
const levelUpGrowth = 1.5

// LevelUpResult describes the outcome of a single level-up.
type LevelUpResult struct {
	Level int
	Stats Stats
}

// AddExperience adds amount to Experience and applies at most one level-up.
//
// Negative amounts are ignored. Experience overshooting more than one
// threshold is carried forward rather than cascading further level-ups.
//
// Postcondition: Level increases by at most 1; returns true iff it did.
func (c *Character) AddExperience(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	c.Experience += amount
	if c.Experience >= c.ExperienceToNextLevel {
		c.LevelUp()
		return true
	}
	return false
}

// LevelUp advances the character one level.
//
// The old threshold is subtracted from Experience (floored at 0), the
// threshold grows by 1.5x (floored), every stat gains 1, and both resources
// are recomputed and refilled.
func (c *Character) LevelUp() LevelUpResult {
	c.Level++
	c.Experience -= c.ExperienceToNextLevel
	if c.Experience < 0 {
		c.Experience = 0
	}
	c.ExperienceToNextLevel = int(float64(c.ExperienceToNextLevel) * levelUpGrowth)
	c.Stats.increaseAll(1)
	c.recomputeMaxima()
	c.Health = c.MaxHealth
	c.Stamina = c.MaxStamina
	return LevelUpResult{Level: c.Level, Stats: c.Stats}
}
