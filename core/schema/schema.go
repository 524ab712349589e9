// Package schema models an ArangoDB database layout as a declarative,
// YAML-loadable document: collections, indexes and named graphs, plus a
// schema version. The model is purely descriptive; applying it to a live
// database is the transport layer's job.
package schema

import (
	"fmt"
	"os"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional schema file location, overridable via the
// SCHEMA_PATH environment variable.
const DefaultPath = "./config/db/schema.yaml"

// DatabaseSchema describes a complete database layout.
type DatabaseSchema struct {
	// Version is an optional semantic version of the schema file, used to
	// order schema revisions.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	Collections []CollectionSchema `yaml:"collections" json:"collections"`
	Indexes     []IndexSchema      `yaml:"indexes,omitempty" json:"indexes,omitempty"`
	Graphs      []GraphSchema      `yaml:"graphs,omitempty" json:"graphs,omitempty"`
}

// Load reads and parses a YAML schema file.
func Load(path string) (*DatabaseSchema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaLoad, path, err)
	}
	return Parse(raw)
}

// Parse parses YAML schema bytes.
func Parse(raw []byte) (*DatabaseSchema, error) {
	var s DatabaseSchema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaLoad, err)
	}
	return &s, nil
}

// Marshal renders the schema back to YAML.
func (s *DatabaseSchema) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Save writes the schema as YAML to path.
func (s *DatabaseSchema) Save(path string) error {
	raw, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Collection finds a collection by name, nil when absent.
func (s *DatabaseSchema) Collection(name string) *CollectionSchema {
	for i := range s.Collections {
		if s.Collections[i].Name == name {
			return &s.Collections[i]
		}
	}
	return nil
}

// Index finds an index by name, nil when absent.
func (s *DatabaseSchema) Index(name string) *IndexSchema {
	for i := range s.Indexes {
		if s.Indexes[i].Name == name {
			return &s.Indexes[i]
		}
	}
	return nil
}

// Graph finds a named graph by name, nil when absent.
func (s *DatabaseSchema) Graph(name string) *GraphSchema {
	for i := range s.Graphs {
		if s.Graphs[i].Name == name {
			return &s.Graphs[i]
		}
	}
	return nil
}

// NewerThan reports whether this schema's version is strictly newer than
// other's. A schema without a version is never newer.
func (s *DatabaseSchema) NewerThan(other *DatabaseSchema) (bool, error) {
	if s.Version == "" {
		return false, nil
	}
	if other.Version == "" {
		return true, nil
	}
	mine, err := goversion.NewVersion(s.Version)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidSchema, s.Version, err)
	}
	theirs, err := goversion.NewVersion(other.Version)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrInvalidSchema, other.Version, err)
	}
	return mine.GreaterThan(theirs), nil
}

// Validate checks the schema for internal consistency: parseable version,
// unique non-empty names, and index/graph references that resolve to declared
// collections.
func (s *DatabaseSchema) Validate() error {
	if s.Version != "" {
		if _, err := goversion.NewVersion(s.Version); err != nil {
			return fmt.Errorf("%w: version %q: %v", ErrInvalidSchema, s.Version, err)
		}
	}

	seen := make(map[string]struct{}, len(s.Collections))
	for _, c := range s.Collections {
		if c.Name == "" {
			return fmt.Errorf("%w: collection with empty name", ErrInvalidSchema)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: duplicate collection %q", ErrInvalidSchema, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	indexNames := make(map[string]struct{}, len(s.Indexes))
	for _, idx := range s.Indexes {
		if err := idx.validate(); err != nil {
			return err
		}
		if _, dup := indexNames[idx.Name]; dup {
			return fmt.Errorf("%w: duplicate index %q", ErrInvalidSchema, idx.Name)
		}
		indexNames[idx.Name] = struct{}{}
		if _, ok := seen[idx.Collection]; !ok {
			return fmt.Errorf("%w: index %q references unknown collection %q",
				ErrInvalidSchema, idx.Name, idx.Collection)
		}
	}

	graphNames := make(map[string]struct{}, len(s.Graphs))
	for _, g := range s.Graphs {
		if err := g.validate(seen); err != nil {
			return err
		}
		if _, dup := graphNames[g.Name]; dup {
			return fmt.Errorf("%w: duplicate graph %q", ErrInvalidSchema, g.Name)
		}
		graphNames[g.Name] = struct{}{}
	}
	return nil
}
