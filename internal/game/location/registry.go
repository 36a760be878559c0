package location

// Discovery is the per-save state of one catalog location.
type Discovery struct {
	Discovered bool
	Visited    bool
}

// Registry tracks which catalog locations a save has discovered and visited,
// and where the player currently is.
//
// Registry is not safe for concurrent use; its owner serializes access.
//
// Invariant: the catalog's start location is always discovered and visited,
// and the current location is always discovered.
type Registry struct {
	catalog *Catalog
	state   map[ID]Discovery
	current ID
}

// NewRegistry creates a Registry positioned at the catalog's start location.
//
// Precondition: catalog must be non-nil.
func NewRegistry(catalog *Catalog) *Registry {
	r := &Registry{catalog: catalog}
	r.Reset()
	return r
}

// Reset forgets every discovery and returns to the start location.
func (r *Registry) Reset() {
	start := r.catalog.Start().ID
	r.state = map[ID]Discovery{start: {Discovered: true, Visited: true}}
	r.current = start
}

// Catalog returns the static catalog backing r.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Current returns the player's current location.
func (r *Registry) Current() *Location {
	l, _ := r.catalog.Get(r.current)
	return l
}

// State returns the discovery state for id.
func (r *Registry) State(id ID) Discovery {
	return r.state[id]
}

// IsDiscovered reports whether id is a catalog location discovered in this save.
func (r *Registry) IsDiscovered(id ID) bool {
	if _, ok := r.catalog.Get(id); !ok {
		return false
	}
	return r.state[id].Discovered
}

// Discovered returns every discovered location in catalog order.
func (r *Registry) Discovered() []*Location {
	var out []*Location
	for _, l := range r.catalog.All() {
		if r.state[l.ID].Discovered {
			out = append(out, l)
		}
	}
	return out
}

// Undiscovered returns every not-yet-discovered location in catalog order.
func (r *Registry) Undiscovered() []*Location {
	var out []*Location
	for _, l := range r.catalog.All() {
		if !r.state[l.ID].Discovered {
			out = append(out, l)
		}
	}
	return out
}

// Discover marks id discovered (not visited).
//
// Postcondition: Returns (loc, true) when id was newly discovered; (nil, false)
// when id is unknown or already discovered, with no mutation.
func (r *Registry) Discover(id ID) (*Location, bool) {
	l, ok := r.catalog.Get(id)
	if !ok || r.state[id].Discovered {
		return nil, false
	}
	r.state[id] = Discovery{Discovered: true}
	return l, true
}

// ChangeLocation moves the player to id and marks it visited.
//
// Postcondition: Returns false with no mutation unless id is a discovered
// catalog location.
func (r *Registry) ChangeLocation(id ID) bool {
	if !r.IsDiscovered(id) {
		return false
	}
	r.current = id
	st := r.state[id]
	st.Visited = true
	r.state[id] = st
	return true
}

// Export returns a copy of the mutable registry state.
func (r *Registry) Export() (map[ID]Discovery, ID) {
	out := make(map[ID]Discovery, len(r.state))
	for id, d := range r.state {
		out[id] = d
	}
	return out, r.current
}

// Restore replaces the mutable state with states and current.
//
// Entries for IDs missing from the catalog are dropped. The start location
// is re-seeded as discovered and visited. A current location that is unknown
// or undiscovered falls back to the start location.
func (r *Registry) Restore(states map[ID]Discovery, current ID) {
	r.Reset()
	for id, d := range states {
		if _, ok := r.catalog.Get(id); !ok {
			continue
		}
		if id == r.catalog.Start().ID {
			continue
		}
		r.state[id] = d
	}
	if r.IsDiscovered(current) {
		r.current = current
		st := r.state[current]
		st.Visited = true
		r.state[current] = st
	}
}
