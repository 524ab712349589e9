package arango

import (
	"context"
	"encoding/json"

	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"

	"github.com/asaidimu/go-arachne/core/query"
)

// RunQuery compiles the query descriptor and executes it, draining the
// cursor across batches.
func (db *Database) RunQuery(ctx context.Context, q query.Query) ([]json.RawMessage, error) {
	aql, err := q.ToAQL()
	if err != nil {
		return nil, err
	}
	return db.RunAQL(ctx, aql)
}

// RunAQL executes a raw AQL statement, draining the cursor across batches.
func (db *Database) RunAQL(ctx context.Context, aql string) ([]json.RawMessage, error) {
	db.logger.Debug("running query", zap.String("aql", aql))

	cursor, err := db.handle.Query(driver.WithQueryBatchSize(ctx, int(db.cfg.batchSize())), aql, nil)
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close()

	var result []json.RawMessage
	for cursor.HasMore() {
		var doc json.RawMessage
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, mapError(err)
		}
		result = append(result, doc)
	}

	db.logger.Debug("query complete", zap.Int("documents", len(result)))
	return result, nil
}
