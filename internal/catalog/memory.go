package catalog

import "fmt"

// MemorySource serves the lists straight from slices.
type MemorySource struct {
	lists map[Section][]Item
}

// Ensure MemorySource implements Source.
var _ Source = (*MemorySource)(nil)

// NewMemorySource copies and validates the seed lists, so hand-built seeds
// are held to the same rules as decoded ones.
func NewMemorySource(seed Seed) (*MemorySource, error) {
	seed = seed.clone()
	if err := seed.normalize(); err != nil {
		return nil, err
	}
	m := &MemorySource{lists: make(map[Section][]Item, 2)}
	for _, sec := range Sections() {
		m.lists[sec] = seed.List(sec)
	}
	return m, nil
}

// Items implements Source.
func (m *MemorySource) Items(s Section) []Item {
	list := m.lists[s]
	out := make([]Item, len(list))
	copy(out, list)
	return out
}

// Lookup implements Source.
func (m *MemorySource) Lookup(s Section, name string) (Item, error) {
	for _, it := range m.lists[s] {
		if it.Name == name {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%s %q: %w", s, name, ErrNotFound)
}

// Close implements Source.
func (m *MemorySource) Close() error {
	return nil
}
