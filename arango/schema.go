package arango

import (
	"context"
	"fmt"

	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"

	"github.com/asaidimu/go-arachne/core/record"
	"github.com/asaidimu/go-arachne/core/schema"
)

// The applied schema is stored under a well-known document so later applies
// can compare versions against it.
const (
	schemaCollection  = "arachne_schema"
	schemaDocumentKey = "current"
)

// handleError drops the error when silent mode is on, so that applying a
// schema over an existing database keeps going past already-created elements.
func (db *Database) handleError(err error, silent bool) error {
	if err == nil {
		return nil
	}
	if silent {
		db.logger.Debug("ignored schema error", zap.Error(err))
		return nil
	}
	return err
}

// ApplySchema creates every collection, index and named graph of the schema,
// then stores the schema document for later runs. When both the incoming and
// the stored schema carry versions and the incoming one is not newer, the
// apply is skipped. With silent set, per-element errors are logged and
// skipped instead of aborting the run.
func (db *Database) ApplySchema(ctx context.Context, s *schema.DatabaseSchema, silent bool) error {
	stored, err := db.StoredSchema(ctx)
	if err != nil {
		if err = db.handleError(err, silent); err != nil {
			return err
		}
	} else if stored != nil && s.Version != "" && stored.Version != "" {
		newer, verr := s.NewerThan(stored)
		if verr != nil {
			if verr = db.handleError(verr, silent); verr != nil {
				return verr
			}
		} else if !newer {
			db.logger.Info("schema version already applied, skipping",
				zap.String("version", s.Version), zap.String("stored", stored.Version))
			return nil
		}
	}

	for _, c := range s.Collections {
		if err := db.handleError(db.CreateCollection(ctx, c), silent); err != nil {
			return err
		}
	}
	for i := range s.Indexes {
		if err := db.handleError(db.CreateIndex(ctx, &s.Indexes[i]), silent); err != nil {
			return err
		}
	}
	for _, g := range s.Graphs {
		if err := db.handleError(db.CreateGraph(ctx, g), silent); err != nil {
			return err
		}
	}
	return db.handleError(db.storeSchema(ctx, s), silent)
}

// StoredSchema reads the schema document a previous apply stored, nil when
// the database carries none.
func (db *Database) StoredSchema(ctx context.Context) (*schema.DatabaseSchema, error) {
	var s schema.DatabaseSchema
	err := db.ReadDocument(ctx, schemaCollection, schemaDocumentKey, &s)
	if record.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// storeSchema writes the schema under the well-known key, creating the
// bookkeeping collection on first use.
func (db *Database) storeSchema(ctx context.Context, s *schema.DatabaseSchema) error {
	exists, err := db.handle.CollectionExists(ctx, schemaCollection)
	if err != nil {
		return mapError(err)
	}
	if !exists {
		if _, err := db.handle.CreateCollection(ctx, schemaCollection, nil); err != nil {
			return mapError(err)
		}
	}

	if _, err := db.ReplaceDocument(ctx, schemaCollection, schemaDocumentKey, s); !record.IsNotFoundErr(err) {
		return err
	}
	doc := struct {
		Key string `json:"_key"`
		*schema.DatabaseSchema
	}{schemaDocumentKey, s}
	_, err = db.CreateDocument(ctx, schemaCollection, doc)
	return err
}

// DropSchema removes every element of the schema from the database, along
// with the stored schema document.
func (db *Database) DropSchema(ctx context.Context, s *schema.DatabaseSchema) error {
	for _, g := range s.Graphs {
		db.logger.Debug("dropping graph", zap.String("name", g.Name))
		graph, err := db.handle.Graph(ctx, g.Name)
		if err != nil {
			return mapError(err)
		}
		if err := graph.Remove(ctx); err != nil {
			return mapError(err)
		}
	}
	for _, c := range s.Collections {
		db.logger.Debug("dropping collection", zap.String("name", c.Name))
		col, err := db.collection(ctx, c.Name)
		if err != nil {
			return err
		}
		if err := col.Remove(ctx); err != nil {
			return mapError(err)
		}
	}
	if err := db.RemoveDocument(ctx, schemaCollection, schemaDocumentKey); err != nil && !record.IsNotFoundErr(err) {
		return err
	}
	return nil
}

// CreateCollection creates one document or edge collection.
func (db *Database) CreateCollection(ctx context.Context, c schema.CollectionSchema) error {
	db.logger.Debug("creating collection", zap.String("name", c.Name))
	options := &driver.CreateCollectionOptions{Type: driver.CollectionTypeDocument}
	if c.IsEdgeCollection {
		options.Type = driver.CollectionTypeEdge
	}
	if _, err := db.handle.CreateCollection(ctx, c.Name, options); err != nil {
		return mapError(err)
	}
	return nil
}

// CreateIndex ensures one index and stores the server-assigned id back into
// the schema element.
func (db *Database) CreateIndex(ctx context.Context, idx *schema.IndexSchema) error {
	db.logger.Debug("creating index",
		zap.String("name", idx.Name), zap.String("collection", idx.Collection))
	col, err := db.collection(ctx, idx.Collection)
	if err != nil {
		return err
	}

	var created driver.Index
	switch idx.Settings.Type {
	case schema.IndexPersistent:
		created, _, err = col.EnsurePersistentIndex(ctx, idx.Fields, &driver.EnsurePersistentIndexOptions{
			Name:   idx.Name,
			Unique: idx.Settings.Unique,
			Sparse: idx.Settings.Sparse,
		})
	case schema.IndexTTL:
		created, _, err = col.EnsureTTLIndex(ctx, idx.Fields[0], int(idx.Settings.ExpireAfter), &driver.EnsureTTLIndexOptions{
			Name: idx.Name,
		})
	case schema.IndexGeo:
		created, _, err = col.EnsureGeoIndex(ctx, idx.Fields, &driver.EnsureGeoIndexOptions{
			Name:    idx.Name,
			GeoJSON: idx.Settings.GeoJSON,
		})
	case schema.IndexFulltext:
		created, _, err = col.EnsureFullTextIndex(ctx, idx.Fields, &driver.EnsureFullTextIndexOptions{
			Name:      idx.Name,
			MinLength: int(idx.Settings.MinLength),
		})
	default:
		return fmt.Errorf("%w: index %q has unsupported type %q",
			schema.ErrInvalidSchema, idx.Name, idx.Settings.Type)
	}
	if err != nil {
		return mapError(err)
	}
	idx.ID = created.ID()
	return nil
}

// CreateGraph creates one named graph.
func (db *Database) CreateGraph(ctx context.Context, g schema.GraphSchema) error {
	db.logger.Debug("creating graph", zap.String("name", g.Name))
	options := &driver.CreateGraphOptions{
		OrphanVertexCollections: g.OrphanCollections,
		IsSmart:                 g.IsSmart,
		IsDisjoint:              g.IsDisjoint,
	}
	for _, def := range g.EdgeDefinitions {
		options.EdgeDefinitions = append(options.EdgeDefinitions, driver.EdgeDefinition{
			Collection: def.Collection,
			From:       def.From,
			To:         def.To,
		})
	}
	if g.Options != nil {
		options.SmartGraphAttribute = g.Options.SmartGraphAttribute
		options.NumberOfShards = int(g.Options.NumberOfShards)
		options.ReplicationFactor = int(g.Options.ReplicationFactor)
		options.WriteConcern = int(g.Options.WriteConcern)
	}
	if _, err := db.handle.CreateGraphV2(ctx, g.Name, options); err != nil {
		return mapError(err)
	}
	return nil
}
