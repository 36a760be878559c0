// Package gametime models the simulated City of Wonders calendar.
package gametime

import "fmt"

const (
	MinutesPerHour = 60
	HoursPerDay    = 24

	// StartDay and StartHour locate a new game on the calendar.
	StartDay  = 1
	StartHour = 8
)

// GameTime is a point on the simulated calendar.
//
// Invariant: after any Advance, 0 <= Minute < 60 and 0 <= Hour < 24.
type GameTime struct {
	Day          int `json:"day"`
	Hour         int `json:"hour"`
	Minute       int `json:"minute"`
	TotalMinutes int `json:"totalMinutes"`
}

// New returns the calendar position of a freshly started game.
func New() GameTime {
	return GameTime{Day: StartDay, Hour: StartHour}
}

// Hooks receives side effects raised while time advances.
// Either field may be nil.
type Hooks struct {
	// OnHour runs once per hour rollover with the time as of that rollover.
	// Hour may read 24 or more here; day rollover is applied afterwards.
	OnHour func(GameTime)
	// OnDay runs once per day rollover with the time as of that rollover.
	OnDay func(GameTime)
}

// Rollovers counts the boundaries crossed by a single Advance.
type Rollovers struct {
	Hours int
	Days  int
}

// Advance moves t forward by minutes, rolling minutes into hours and hours
// into days. Hourly hooks fire for every hour boundary crossed, then daily
// hooks for every day boundary.
//
// Precondition: minutes >= 0; negative values are treated as 0.
// Postcondition: TotalMinutes grows by minutes; Minute and Hour are in range.
func (t *GameTime) Advance(minutes int, hooks Hooks) Rollovers {
	if minutes < 0 {
		minutes = 0
	}
	var r Rollovers
	t.TotalMinutes += minutes
	t.Minute += minutes
	for t.Minute >= MinutesPerHour {
		t.Minute -= MinutesPerHour
		t.Hour++
		r.Hours++
		if hooks.OnHour != nil {
			hooks.OnHour(*t)
		}
	}
	for t.Hour >= HoursPerDay {
		t.Hour -= HoursPerDay
		t.Day++
		r.Days++
		if hooks.OnDay != nil {
			hooks.OnDay(*t)
		}
	}
	return r
}

// Valid reports whether every component is within its range.
func (t GameTime) Valid() bool {
	return t.Day >= 1 &&
		t.Hour >= 0 && t.Hour < HoursPerDay &&
		t.Minute >= 0 && t.Minute < MinutesPerHour &&
		t.TotalMinutes >= 0
}

// TopOfHour reports whether t sits exactly on an hour boundary.
func (t GameTime) TopOfHour() bool {
	return t.Minute == 0
}

// String returns the time as "Day N, H:MM AM".
func (t GameTime) String() string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "AM"
	if t.Hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("Day %d, %d:%02d %s", t.Day, hour, t.Minute, ampm)
}
