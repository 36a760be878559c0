package inventory

// Inventory is the set of item IDs a save owns, in acquisition order.
//
// Inventory is not safe for concurrent use; its owner serializes access.
type Inventory struct {
	items []string
	owned map[string]bool
}

// New returns an Inventory holding ids, skipping duplicates and empty IDs.
func New(ids ...string) *Inventory {
	inv := &Inventory{owned: make(map[string]bool)}
	for _, id := range ids {
		inv.Add(id)
	}
	return inv
}

// Has reports whether id is owned.
func (i *Inventory) Has(id string) bool {
	return i.owned[id]
}

// Add records id as owned.
//
// Postcondition: Returns false with no mutation when id is empty or already owned.
func (i *Inventory) Add(id string) bool {
	if id == "" || i.owned[id] {
		return false
	}
	i.owned[id] = true
	i.items = append(i.items, id)
	return true
}

// IDs returns a copy of the owned IDs in acquisition order.
func (i *Inventory) IDs() []string {
	out := make([]string, len(i.items))
	copy(out, i.items)
	return out
}

// Len returns the number of owned items.
func (i *Inventory) Len() int {
	return len(i.items)
}
