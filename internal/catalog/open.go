package catalog

import "fmt"

// Source kinds accepted by Open.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
)

// Open builds the named source kind from a seed.
func Open(kind string, seed Seed) (Source, error) {
	switch kind {
	case "", KindMemory:
		src, err := NewMemorySource(seed)
		if err != nil {
			return nil, err
		}
		return src, nil
	case KindSQLite:
		src, err := NewSQLiteSource(seed)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q (want %s or %s)", kind, KindMemory, KindSQLite)
	}
}
