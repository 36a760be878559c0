package character

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when a character is created without a name.
var ErrEmptyName = errors.New("character name must not be empty")

// New constructs a level-1 Character with base stats and full resources.
//
// Precondition: name must contain a non-space character; class must be valid.
// Postcondition: Returns a Character with Health == MaxHealth and
// Stamina == MaxStamina, or a non-nil error.
func New(name string, class Class) (*Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !class.Valid() {
		return nil, fmt.Errorf("unknown character class %q", class)
	}
	c := &Character{
		Name:                  name,
		Class:                 class,
		Stats:                 BaseStats(),
		Level:                 1,
		ExperienceToNextLevel: BaseExperienceToNextLevel,
		MaxGold:               BaseMaxGold,
	}
	c.recomputeMaxima()
	c.Health = c.MaxHealth
	c.Stamina = c.MaxStamina
	return c, nil
}

// recomputeMaxima derives MaxHealth from vitality and MaxStamina from endurance.
func (c *Character) recomputeMaxima() {
	c.MaxHealth = c.Stats.Vitality * ResourcePerStat
	c.MaxStamina = c.Stats.Endurance * ResourcePerStat
}
