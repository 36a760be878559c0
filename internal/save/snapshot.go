// Package save defines the persisted form of a game and converts it to and
// from JSON.
//
// A Snapshot holds plain data only. Decode is tolerant: every field falls
// back to its baseline independently when it is missing or has the wrong
// JSON type, so saves written by older versions still load.
package save

import (
	"time"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/gametime"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

const (
	// Key is the store key every snapshot is written under.
	Key = "cityOfWondersSave"
	// CurrentVersion is the schema version Encode writes.
	// Version 0 is the legacy, versionless layout.
	CurrentVersion = 1
)

// Player is the persisted character.
type Player struct {
	Name                  string          `json:"name"`
	Class                 character.Class `json:"class"`
	Stats                 character.Stats `json:"stats"`
	Level                 int             `json:"level"`
	Experience            int             `json:"experience"`
	ExperienceToNextLevel int             `json:"experienceToNextLevel"`
	Health                int             `json:"health"`
	MaxHealth             int             `json:"maxHealth"`
	Stamina               int             `json:"stamina"`
	MaxStamina            int             `json:"maxStamina"`
	Gold                  int             `json:"gold"`
	MaxGold               int             `json:"maxGold"`
}

// PlayerFrom flattens c.
func PlayerFrom(c *character.Character) *Player {
	if c == nil {
		return nil
	}
	return &Player{
		Name:                  c.Name,
		Class:                 c.Class,
		Stats:                 c.Stats,
		Level:                 c.Level,
		Experience:            c.Experience,
		ExperienceToNextLevel: c.ExperienceToNextLevel,
		Health:                c.Health,
		MaxHealth:             c.MaxHealth,
		Stamina:               c.Stamina,
		MaxStamina:            c.MaxStamina,
		Gold:                  c.Gold,
		MaxGold:               c.MaxGold,
	}
}

// Character rebuilds a live character from p.
//
// Postcondition: the returned Character satisfies every resource invariant.
func (p *Player) Character() *character.Character {
	c := &character.Character{
		Name:                  p.Name,
		Class:                 p.Class,
		Stats:                 p.Stats,
		Level:                 p.Level,
		Experience:            p.Experience,
		ExperienceToNextLevel: p.ExperienceToNextLevel,
		Health:                p.Health,
		MaxHealth:             p.MaxHealth,
		Stamina:               p.Stamina,
		MaxStamina:            p.MaxStamina,
		Gold:                  p.Gold,
		MaxGold:               p.MaxGold,
	}
	c.Normalize()
	return c
}

// LocationState is the persisted discovery state of one location.
// Name and Level are written for readability and ignored on load.
type LocationState struct {
	Discovered bool   `json:"discovered"`
	Visited    bool   `json:"visited"`
	Name       string `json:"name,omitempty"`
	Level      int    `json:"level,omitempty"`
}

// Quest is a persisted quest entry.
type Quest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Settings are the player's preferences.
type Settings struct {
	SoundEnabled      bool `json:"soundEnabled"`
	AnimationsEnabled bool `json:"animationsEnabled"`
	AutosaveEnabled   bool `json:"autosaveEnabled"`
}

// DefaultSettings enables everything.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, AnimationsEnabled: true, AutosaveEnabled: true}
}

// Event is a persisted event log entry.
type Event struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
	At       time.Time `json:"timestamp"`
	GameTime string    `json:"gameTime"`
}

// Snapshot is the whole persisted game.
type Snapshot struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"savedAt"`
	// Player is nil before a character is created.
	Player          *Player                       `json:"player"`
	GameTime        gametime.GameTime             `json:"gameTime"`
	Locations       map[location.ID]LocationState `json:"locations"`
	CurrentLocation location.ID                   `json:"currentLocation"`
	Quests          []Quest                       `json:"quests"`
	Inventory       []string                      `json:"inventory"`
	Settings        Settings                      `json:"settings"`
	EventLog        []Event                       `json:"eventLog"`
}

// Baseline returns the snapshot of a brand new game positioned at the start
// of catalog. It is also the source of every default Decode applies.
func Baseline(catalog *location.Catalog) *Snapshot {
	start := catalog.Start()
	return &Snapshot{
		Version:  CurrentVersion,
		GameTime: gametime.New(),
		Locations: map[location.ID]LocationState{
			start.ID: {Discovered: true, Visited: true, Name: start.Name, Level: start.Level},
		},
		CurrentLocation: start.ID,
		Quests:          []Quest{},
		Inventory:       []string{},
		Settings:        DefaultSettings(),
		EventLog:        []Event{},
	}
}

// Discoveries converts the persisted location map into registry state.
func (s *Snapshot) Discoveries() map[location.ID]location.Discovery {
	out := make(map[location.ID]location.Discovery, len(s.Locations))
	for id, st := range s.Locations {
		out[id] = location.Discovery{Discovered: st.Discovered, Visited: st.Visited}
	}
	return out
}

// SetDiscoveries records registry state, annotating each entry from catalog.
func (s *Snapshot) SetDiscoveries(catalog *location.Catalog, states map[location.ID]location.Discovery) {
	s.Locations = make(map[location.ID]LocationState, len(states))
	for id, d := range states {
		st := LocationState{Discovered: d.Discovered, Visited: d.Visited}
		if l, ok := catalog.Get(id); ok {
			st.Name, st.Level = l.Name, l.Level
		}
		s.Locations[id] = st
	}
}
