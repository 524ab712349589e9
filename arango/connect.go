package arango

import (
	"context"

	"go.uber.org/zap"

	"github.com/asaidimu/go-arachne/core/schema"
)

// Connect builds a Database from cfg and, when applySchema is set, loads the
// configured YAML schema file, validates it and applies it silently so an
// already-provisioned database connects cleanly.
func Connect(ctx context.Context, cfg Config, logger *zap.Logger, applySchema bool) (*Database, error) {
	db, err := NewDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if !applySchema {
		return db, nil
	}

	s, err := schema.Load(cfg.schemaPath())
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := db.ApplySchema(ctx, s, true); err != nil {
		return nil, err
	}
	return db, nil
}
