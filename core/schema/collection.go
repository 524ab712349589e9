package schema

// CollectionSchema describes one collection of the database layout.
type CollectionSchema struct {
	Name string `yaml:"name" json:"name"`
	// IsEdgeCollection marks the collection as holding graph edges.
	IsEdgeCollection bool `yaml:"is_edge_collection" json:"is_edge_collection"`
}

// NewCollection builds a document collection schema.
func NewCollection(name string) CollectionSchema {
	return CollectionSchema{Name: name}
}

// NewEdgeCollection builds an edge collection schema.
func NewEdgeCollection(name string) CollectionSchema {
	return CollectionSchema{Name: name, IsEdgeCollection: true}
}
