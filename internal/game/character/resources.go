package character

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ModifyHealth adds delta to Health and clamps into [0, MaxHealth].
//
// Postcondition: 0 <= Health <= MaxHealth; returns the new Health.
func (c *Character) ModifyHealth(delta int) int {
	c.Health = clamp(c.Health+delta, 0, c.MaxHealth)
	return c.Health
}

// ModifyStamina adds delta to Stamina and clamps into [0, MaxStamina].
//
// Postcondition: 0 <= Stamina <= MaxStamina; returns the new Stamina.
func (c *Character) ModifyStamina(delta int) int {
	c.Stamina = clamp(c.Stamina+delta, 0, c.MaxStamina)
	return c.Stamina
}

// ModifyGold adds delta to Gold and clamps into [0, MaxGold].
// Gold beyond the cap is lost.
//
// Postcondition: 0 <= Gold <= MaxGold; returns the new Gold.
func (c *Character) ModifyGold(delta int) int {
	c.Gold = clamp(c.Gold+delta, 0, c.MaxGold)
	return c.Gold
}

// IncreaseMaxGold raises the gold cap by delta. It never grants gold.
//
// Precondition: delta >= 0; negative deltas are ignored.
func (c *Character) IncreaseMaxGold(delta int) int {
	if delta > 0 {
		c.MaxGold += delta
	}
	return c.MaxGold
}

// RestoreResources refills Health and Stamina to their maxima.
func (c *Character) RestoreResources() {
	c.Health = c.MaxHealth
	c.Stamina = c.MaxStamina
}

// Normalize clamps every field into its valid range. It is applied after a
// snapshot restore, where stored values may disagree with stored maxima.
func (c *Character) Normalize() {
	if c.MaxHealth < 0 {
		c.MaxHealth = 0
	}
	if c.MaxStamina < 0 {
		c.MaxStamina = 0
	}
	if c.MaxGold < 0 {
		c.MaxGold = 0
	}
	if c.Level < 1 {
		c.Level = 1
	}
	if c.Experience < 0 {
		c.Experience = 0
	}
	if c.ExperienceToNextLevel < 1 {
		c.ExperienceToNextLevel = BaseExperienceToNextLevel
	}
	c.Health = clamp(c.Health, 0, c.MaxHealth)
	c.Stamina = clamp(c.Stamina, 0, c.MaxStamina)
	c.Gold = clamp(c.Gold, 0, c.MaxGold)
}
