package schema

import "fmt"

// IndexType enumerates the supported ArangoDB index kinds.
type IndexType string

const (
	IndexPersistent IndexType = "persistent"
	IndexTTL        IndexType = "ttl"
	IndexGeo        IndexType = "geo"
	IndexFulltext   IndexType = "fulltext"
)

// IndexSettings carries the per-type index options. Only the fields relevant
// to the chosen Type are meaningful; the rest stay at their zero value and
// are omitted from YAML and JSON.
type IndexSettings struct {
	Type IndexType `yaml:"type" json:"type"`

	// Persistent options.
	Unique bool `yaml:"unique,omitempty" json:"unique,omitempty"`
	Sparse bool `yaml:"sparse,omitempty" json:"sparse,omitempty"`

	// TTL option, in seconds.
	ExpireAfter uint `yaml:"expire_after,omitempty" json:"expireAfter,omitempty"`

	// Geo option.
	GeoJSON bool `yaml:"geo_json,omitempty" json:"geoJson,omitempty"`

	// Fulltext option.
	MinLength uint `yaml:"min_length,omitempty" json:"minLength,omitempty"`
}

// IndexSchema describes one index of the database layout.
type IndexSchema struct {
	// ID is assigned by the server on creation and is required to drop the
	// index later.
	ID         string        `yaml:"id,omitempty" json:"id,omitempty"`
	Name       string        `yaml:"name" json:"name"`
	Collection string        `yaml:"collection" json:"collection"`
	Fields     []string      `yaml:"fields" json:"fields"`
	Settings   IndexSettings `yaml:"settings" json:"settings"`
}

func (idx *IndexSchema) validate() error {
	if idx.Name == "" {
		return fmt.Errorf("%w: index with empty name", ErrInvalidSchema)
	}
	if len(idx.Fields) == 0 {
		return fmt.Errorf("%w: index %q has no fields", ErrInvalidSchema, idx.Name)
	}
	switch idx.Settings.Type {
	case IndexPersistent, IndexTTL, IndexGeo, IndexFulltext:
		return nil
	default:
		return fmt.Errorf("%w: index %q has unsupported type %q",
			ErrInvalidSchema, idx.Name, idx.Settings.Type)
	}
}
