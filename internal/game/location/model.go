// Package location provides the static catalog of City of Wonders locations
// and the per-save registry of which of them have been discovered.
package location

import "fmt"

// ID is the stable key of a catalog location.
type ID string

// Well-known location IDs. The exploration event table is keyed by these.
const (
	CitySquare ID = "city-square"
	Market     ID = "market"
	Harbor     ID = "harbor"
	Gardens    ID = "gardens"
	Academy    ID = "academy"
)

// Action is a verb the player can perform at a location.
type Action string

const (
	ActionExplore    Action = "explore"
	ActionRest       Action = "rest"
	ActionTrade      Action = "trade"
	ActionBeg        Action = "beg"
	ActionPickPocket Action = "pickpocket"
	ActionStudy      Action = "study"
)

// knownActions lists every verb a catalog entry may declare.
var knownActions = map[Action]bool{
	ActionExplore:    true,
	ActionRest:       true,
	ActionTrade:      true,
	ActionBeg:        true,
	ActionPickPocket: true,
	ActionStudy:      true,
}

// Location is an immutable catalog entry.
type Location struct {
	// ID uniquely identifies this location.
	ID ID
	// Name is the display name.
	Name string
	// Description is shown when the player arrives.
	Description string
	// Level is the suggested minimum character level.
	Level int
	// Actions lists the verbs permitted here, in display order.
	Actions []Action
}

// Permits reports whether a is one of l's permitted actions.
func (l *Location) Permits(a Action) bool {
	for _, x := range l.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Catalog is the ordered, immutable set of all locations.
type Catalog struct {
	start   ID
	order   []ID
	entries map[ID]*Location
}

// Start returns the starting location.
func (c *Catalog) Start() *Location {
	return c.entries[c.start]
}

// Get returns the location with the given ID.
//
// Postcondition: Returns (loc, true) if found, or (nil, false) otherwise.
func (c *Catalog) Get(id ID) (*Location, bool) {
	l, ok := c.entries[id]
	return l, ok
}

// All returns every location in catalog order.
func (c *Catalog) All() []*Location {
	out := make([]*Location, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.order)
}

// NewCatalog builds and validates a catalog.
//
// Precondition: locs is non-empty; start names one of locs.
// Postcondition: Returns a Catalog or an error describing the first violation.
func NewCatalog(start ID, locs []*Location) (*Catalog, error) {
	c := &Catalog{
		start:   start,
		entries: make(map[ID]*Location, len(locs)),
	}
	for _, l := range locs {
		if err := validateLocation(l); err != nil {
			return nil, err
		}
		if _, dup := c.entries[l.ID]; dup {
			return nil, fmt.Errorf("duplicate location ID %q", l.ID)
		}
		c.entries[l.ID] = l
		c.order = append(c.order, l.ID)
	}
	if len(c.order) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one location")
	}
	if _, ok := c.entries[start]; !ok {
		return nil, fmt.Errorf("start location %q not found in catalog", start)
	}
	return c, nil
}

func validateLocation(l *Location) error {
	if l.ID == "" {
		return fmt.Errorf("location ID must not be empty")
	}
	if l.Name == "" {
		return fmt.Errorf("location %q: name must not be empty", l.ID)
	}
	if l.Description == "" {
		return fmt.Errorf("location %q: description must not be empty", l.ID)
	}
	if l.Level < 1 {
		return fmt.Errorf("location %q: level must be >= 1, got %d", l.ID, l.Level)
	}
	for _, a := range l.Actions {
		if !knownActions[a] {
			return fmt.Errorf("location %q: unknown action %q", l.ID, a)
		}
	}
	return nil
}
