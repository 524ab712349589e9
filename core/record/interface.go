package record

import (
	"context"
	"encoding/json"

	"github.com/asaidimu/go-arachne/core/query"
)

// Database is the backend contract the record layer drives. The arango
// package provides the production implementation; tests substitute fakes.
type Database interface {
	// CreateDocument stores a new document and returns its metadata.
	CreateDocument(ctx context.Context, collection string, document any) (Meta, error)
	// ReadDocument fetches a document by key into out.
	ReadDocument(ctx context.Context, collection, key string, out any) error
	// ReplaceDocument overwrites a document and returns the fresh metadata.
	ReplaceDocument(ctx context.Context, collection, key string, document any) (Meta, error)
	// RemoveDocument deletes a document by key.
	RemoveDocument(ctx context.Context, collection, key string) error
	// RunQuery compiles and executes a query descriptor, returning the raw
	// result documents.
	RunQuery(ctx context.Context, q query.Query) ([]json.RawMessage, error)
}
