package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/gametime"
	"github.com/cory-johannsen/wonders/internal/game/location"
)

// ErrMalformed is returned by Decode when the data is not a JSON object.
var ErrMalformed = errors.New("snapshot is not a JSON object")

// Encode serializes s as JSON.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode parses data into a Snapshot, defaulting each missing or mistyped
// field from Baseline(catalog) and migrating legacy layouts.
//
// Precondition: catalog must be non-nil.
// Postcondition: Returns a Snapshot with Version == CurrentVersion whose
// Player (if any) satisfies every character invariant, or ErrMalformed.
func Decode(data []byte, catalog *location.Catalog) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrMalformed
	}

	s := Baseline(catalog)
	version := intField(root, "version", 0)
	if t, ok := timeField(root, "savedAt"); ok {
		s.SavedAt = t
	}
	s.Player = decodePlayer(root.Get("player"), version)
	s.GameTime = decodeGameTime(root.Get("gameTime"))
	if locs := root.Get("locations"); locs.IsObject() {
		s.Locations = decodeLocations(locs)
	}
	s.CurrentLocation = location.ID(stringField(root, "currentLocation", string(s.CurrentLocation)))
	s.Quests = decodeQuests(root.Get("quests"))
	s.Inventory = decodeStrings(root.Get("inventory"))
	settings, events := root.Get("settings"), root.Get("eventLog")
	// Version 0 saves stored these as gameSettings and events.
	if version == 0 {
		if !settings.Exists() {
			settings = root.Get("gameSettings")
		}
		if !events.Exists() {
			events = root.Get("events")
		}
	}
	s.Settings = decodeSettings(settings)
	s.EventLog = decodeEvents(events)
	s.Version = CurrentVersion
	return s, nil
}

func decodePlayer(obj gjson.Result, version int) *Player {
	if !obj.IsObject() {
		return nil
	}
	name := stringField(obj, "name", "")
	if name == "" {
		return nil
	}
	class := character.Class(stringField(obj, "class", ""))
	if !class.Valid() {
		class = character.ClassNone
	}

	base := character.BaseStats()
	st := obj.Get("stats")
	stats := character.Stats{
		Strength:     intField(st, "strength", base.Strength),
		Dexterity:    intField(st, "dexterity", base.Dexterity),
		Intelligence: intField(st, "intelligence", base.Intelligence),
		Endurance:    intField(st, "endurance", base.Endurance),
		Vitality:     intField(st, "vitality", base.Vitality),
		Wisdom:       intField(st, "wisdom", base.Wisdom),
	}

	p := &Player{
		Name:                  name,
		Class:                 class,
		Stats:                 stats,
		Level:                 intField(obj, "level", 1),
		Experience:            intField(obj, "experience", 0),
		ExperienceToNextLevel: intField(obj, "experienceToNextLevel", character.BaseExperienceToNextLevel),
		MaxHealth:             intField(obj, "maxHealth", stats.Vitality*character.ResourcePerStat),
		MaxGold:               intField(obj, "maxGold", character.BaseMaxGold),
		Gold:                  intField(obj, "gold", 0),
	}
	p.Health = intField(obj, "health", p.MaxHealth)

	// Version 0 saves stored stamina as energy.
	maxStamina := stats.Endurance * character.ResourcePerStat
	if version == 0 {
		maxStamina = intField(obj, "maxEnergy", maxStamina)
	}
	p.MaxStamina = intField(obj, "maxStamina", maxStamina)
	stamina := p.MaxStamina
	if version == 0 {
		stamina = intField(obj, "energy", stamina)
	}
	p.Stamina = intField(obj, "stamina", stamina)

	// Round-trip through Normalize so stored values disagreeing with their
	// maxima are clamped.
	c := p.Character()
	return PlayerFrom(c)
}

func decodeGameTime(obj gjson.Result) gametime.GameTime {
	t := gametime.New()
	if !obj.IsObject() {
		return t
	}
	t.Day = intField(obj, "day", t.Day)
	t.Hour = intField(obj, "hour", t.Hour)
	t.Minute = intField(obj, "minute", t.Minute)
	elapsed := (t.Day-gametime.StartDay)*gametime.HoursPerDay*gametime.MinutesPerHour +
		(t.Hour-gametime.StartHour)*gametime.MinutesPerHour + t.Minute
	t.TotalMinutes = intField(obj, "totalMinutes", max(elapsed, 0))
	if !t.Valid() {
		return gametime.New()
	}
	return t
}

func decodeLocations(obj gjson.Result) map[location.ID]LocationState {
	out := make(map[location.ID]LocationState)
	obj.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		out[location.ID(key.String())] = LocationState{
			Discovered: boolField(value, "discovered", false),
			Visited:    boolField(value, "visited", false),
			Name:       stringField(value, "name", ""),
			Level:      intField(value, "level", 0),
		}
		return true
	})
	return out
}

func decodeQuests(arr gjson.Result) []Quest {
	out := []Quest{}
	if !arr.IsArray() {
		return out
	}
	for _, q := range arr.Array() {
		id := stringField(q, "id", "")
		if id == "" {
			continue
		}
		out = append(out, Quest{
			ID:        id,
			Name:      stringField(q, "name", id),
			Completed: boolField(q, "completed", false),
		})
	}
	return out
}

func decodeStrings(arr gjson.Result) []string {
	out := []string{}
	if !arr.IsArray() {
		return out
	}
	for _, v := range arr.Array() {
		if v.Type == gjson.String && v.Str != "" {
			out = append(out, v.Str)
		}
	}
	return out
}

func decodeSettings(obj gjson.Result) Settings {
	s := DefaultSettings()
	if !obj.IsObject() {
		return s
	}
	s.SoundEnabled = boolField(obj, "soundEnabled", s.SoundEnabled)
	s.AnimationsEnabled = boolField(obj, "animationsEnabled", s.AnimationsEnabled)
	s.AutosaveEnabled = boolField(obj, "autosaveEnabled", s.AutosaveEnabled)
	return s
}

func decodeEvents(arr gjson.Result) []Event {
	out := []Event{}
	if !arr.IsArray() {
		return out
	}
	for _, e := range arr.Array() {
		msg := stringField(e, "message", "")
		if msg == "" {
			continue
		}
		ev := Event{
			ID:       stringField(e, "id", ""),
			Kind:     stringField(e, "kind", stringField(e, "type", "info")),
			Message:  msg,
			GameTime: stringField(e, "gameTime", ""),
		}
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}
		// Version 0 entries nest the real and game times under timestamp.
		if ts := e.Get("timestamp"); ts.IsObject() {
			if t, ok := timeField(ts, "real"); ok {
				ev.At = t
			}
			if game := ts.Get("game"); ev.GameTime == "" && game.IsObject() {
				ev.GameTime = decodeGameTime(game).String()
			}
		} else if t, ok := timeField(e, "timestamp"); ok {
			ev.At = t
		}
		out = append(out, ev)
	}
	return out
}

func intField(obj gjson.Result, key string, def int) int {
	v := obj.Get(key)
	if v.Type != gjson.Number {
		return def
	}
	return int(v.Int())
}

func boolField(obj gjson.Result, key string, def bool) bool {
	v := obj.Get(key)
	if !v.IsBool() {
		return def
	}
	return v.Bool()
}

func stringField(obj gjson.Result, key string, def string) string {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return def
	}
	return v.Str
}

func timeField(obj gjson.Result, key string) (time.Time, bool) {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, v.Str)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
