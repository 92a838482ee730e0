package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed seed.toml
var defaultSeed string

// Seed is the decoded form of a catalog file.
type Seed struct {
	Movies []Item `toml:"movies" yaml:"movies"`
	Shows  []Item `toml:"shows" yaml:"shows"`
}

// List returns the seed's list for a section.
func (s Seed) List(sec Section) []Item {
	switch sec {
	case Movies:
		return s.Movies
	case Shows:
		return s.Shows
	}
	return nil
}

// DefaultSeed decodes the catalog compiled into the binary.
func DefaultSeed() (Seed, error) {
	return DecodeTOML(strings.NewReader(defaultSeed))
}

// DecodeTOML reads and validates a TOML catalog.
func DecodeTOML(r io.Reader) (Seed, error) {
	var s Seed
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Seed{}, fmt.Errorf("decoding toml catalog: %w", err)
	}
	return s, s.normalize()
}

// DecodeYAML reads and validates a YAML catalog.
func DecodeYAML(r io.Reader) (Seed, error) {
	var s Seed
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return Seed{}, fmt.Errorf("decoding yaml catalog: %w", err)
	}
	return s, s.normalize()
}

// LoadFile picks the decoder from the file extension (.toml, .yaml, .yml).
func LoadFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return Seed{}, fmt.Errorf("catalog %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

// clone copies the lists so normalize never writes through to the caller.
func (s Seed) clone() Seed {
	return Seed{
		Movies: append([]Item(nil), s.Movies...),
		Shows:  append([]Item(nil), s.Shows...),
	}
}

// normalize stamps each item with its section and rejects empty names,
// duplicate names within a list and ratings outside 0..MaxRating.
func (s *Seed) normalize() error {
	for _, sec := range Sections() {
		list := s.List(sec)
		seen := make(map[string]bool, len(list))
		for i := range list {
			list[i].Section = sec
			if err := list[i].validate(); err != nil {
				return err
			}
			if seen[list[i].Name] {
				return fmt.Errorf("%w: duplicate name %q in %s", ErrInvalidItem, list[i].Name, sec)
			}
			seen[list[i].Name] = true
		}
	}
	return nil
}
