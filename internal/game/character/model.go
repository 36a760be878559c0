// Package character defines the player character model and the arithmetic
// rules governing its stats and resources.
package character

// Class is a character background chosen at creation time.
type Class string

const (
	// ClassNone is an unset class.
	ClassNone   Class = ""
	ClassUrchin Class = "Urchin"
	ClassWaif   Class = "Waif"
)

// Valid reports whether c is one of the known classes, including ClassNone.
func (c Class) Valid() bool {
	switch c {
	case ClassNone, ClassUrchin, ClassWaif:
		return true
	default:
		return false
	}
}

const (
	// BaseStat is the value every stat starts at.
	BaseStat = 5
	// BaseExperienceToNextLevel is the level-1 experience threshold.
	BaseExperienceToNextLevel = 100
	// BaseMaxGold is the starting gold cap.
	BaseMaxGold = 10
	// ResourcePerStat converts a governing stat into its resource maximum.
	ResourcePerStat = 2
)

// Stats holds the six base stats. Stats only ever increase.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Endurance    int `json:"endurance"`
	Vitality     int `json:"vitality"`
	Wisdom       int `json:"wisdom"`
}

// BaseStats returns the stat block every new character starts with.
func BaseStats() Stats {
	return Stats{
		Strength:     BaseStat,
		Dexterity:    BaseStat,
		Intelligence: BaseStat,
		Endurance:    BaseStat,
		Vitality:     BaseStat,
		Wisdom:       BaseStat,
	}
}

// Each calls fn with every stat name and value in display order.
func (s Stats) Each(fn func(name string, value int)) {
	fn("strength", s.Strength)
	fn("dexterity", s.Dexterity)
	fn("intelligence", s.Intelligence)
	fn("endurance", s.Endurance)
	fn("vitality", s.Vitality)
	fn("wisdom", s.Wisdom)
}

func (s *Stats) increaseAll(delta int) {
	s.Strength += delta
	s.Dexterity += delta
	s.Intelligence += delta
	s.Endurance += delta
	s.Vitality += delta
	s.Wisdom += delta
}

// Character represents a single player's stats, resources, and progression.
//
// Resource fields are exported for reading and for snapshot restore; gameplay
// code mutates them only through the Modify* methods so they stay in [0, max].
type Character struct {
	Name  string
	Class Class

	Stats Stats

	Level                 int
	Experience            int
	ExperienceToNextLevel int

	Health     int
	MaxHealth  int
	Stamina    int
	MaxStamina int

	Gold    int
	MaxGold int
}

// Clone returns an independent copy of c.
func (c *Character) Clone() *Character {
	out := *c
	return &out
}
