package activity_test

import (
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

// scriptedRoller replays fixed draws. Exhausted scripts yield 0 and false.
type scriptedRoller struct {
	below  []int
	chance []bool
}

func (s *scriptedRoller) Below(_ string, bound int) int {
	if len(s.below) == 0 {
		return 0
	}
	v := s.below[0] % bound
	s.below = s.below[1:]
	return v
}

func (s *scriptedRoller) Chance(_ string, _ float64) bool {
	if len(s.chance) == 0 {
		return false
	}
	v := s.chance[0]
	s.chance = s.chance[1:]
	return v
}

func newCharacter(t require.TestingT, class character.Class) *character.Character {
	c, err := character.New("Tester", class)
	require.NoError(t, err)
	return c
}

func newRegistry() *location.Registry {
	return location.NewRegistry(location.DefaultCatalog())
}

// travelTo discovers and moves to id.
func travelTo(t require.TestingT, reg *location.Registry, id location.ID) {
	reg.Discover(id)
	require.True(t, reg.ChangeLocation(id))
}
