package schema

import "fmt"

// EdgeDefinition binds an edge collection to the vertex collections it may
// connect.
type EdgeDefinition struct {
	Collection string   `yaml:"collection" json:"collection"`
	From       []string `yaml:"from" json:"from"`
	To         []string `yaml:"to" json:"to"`
}

// GraphOptions carries the optional cluster-related graph settings.
type GraphOptions struct {
	SmartGraphAttribute string `yaml:"smart_graph_attribute,omitempty" json:"smartGraphAttribute,omitempty"`
	NumberOfShards      uint   `yaml:"number_of_shards,omitempty" json:"numberOfShards,omitempty"`
	ReplicationFactor   uint   `yaml:"replication_factor,omitempty" json:"replicationFactor,omitempty"`
	WriteConcern        uint   `yaml:"write_concern,omitempty" json:"writeConcern,omitempty"`
}

// GraphSchema describes one named graph of the database layout.
type GraphSchema struct {
	Name              string           `yaml:"name" json:"name"`
	EdgeDefinitions   []EdgeDefinition `yaml:"edge_definitions" json:"edgeDefinitions"`
	OrphanCollections []string         `yaml:"orphan_collections,omitempty" json:"orphanCollections,omitempty"`
	IsSmart           bool             `yaml:"is_smart,omitempty" json:"isSmart,omitempty"`
	IsDisjoint        bool             `yaml:"is_disjoint,omitempty" json:"isDisjoint,omitempty"`
	Options           *GraphOptions    `yaml:"options,omitempty" json:"options,omitempty"`
}

func (g *GraphSchema) validate(collections map[string]struct{}) error {
	if g.Name == "" {
		return fmt.Errorf("%w: graph with empty name", ErrInvalidSchema)
	}
	if len(g.EdgeDefinitions) == 0 {
		return fmt.Errorf("%w: graph %q has no edge definitions", ErrInvalidSchema, g.Name)
	}
	for _, def := range g.EdgeDefinitions {
		if _, ok := collections[def.Collection]; !ok {
			return fmt.Errorf("%w: graph %q references unknown edge collection %q",
				ErrInvalidSchema, g.Name, def.Collection)
		}
		for _, name := range append(append([]string{}, def.From...), def.To...) {
			if _, ok := collections[name]; !ok {
				return fmt.Errorf("%w: graph %q references unknown vertex collection %q",
					ErrInvalidSchema, g.Name, name)
			}
		}
	}
	return nil
}
