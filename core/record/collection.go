package record

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asaidimu/go-arachne/core/query"
)

// Collection binds a record type to a database and an optional lifecycle
// event bus. Every operation is wrapped with start, success and failure
// events when a bus is attached.
type Collection[T Record] struct {
	db   Database
	bus  *Bus
	name string
}

// NewCollection builds a collection handle for T. bus may be nil, in which
// case no events are emitted.
func NewCollection[T Record](db Database, bus *Bus) *Collection[T] {
	var zero T
	return &Collection[T]{db: db, bus: bus, name: zero.CollectionName()}
}

// Name returns the collection name of T.
func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) emitEvent(event Event) {
	if c.bus != nil {
		c.bus.Emit(string(event.Type), event)
	}
}

// withEvents wraps an operation with start, success, and failure events.
func (c *Collection[T]) withEvents(
	operation string,
	startEventType EventType,
	successEventType EventType,
	failedEventType EventType,
	key string,
	fn func() error,
) error {
	startTime := time.Now()
	c.emitEvent(createEvent(startEventType, operation, c.name, key, nil, startTime))

	if err := fn(); err != nil {
		errStr := err.Error()
		c.emitEvent(createEvent(failedEventType, operation, c.name, key, &errStr, startTime))
		return err
	}

	c.emitEvent(createEvent(successEventType, operation, c.name, key, nil, startTime))
	return nil
}

func validatePayload(payload any) error {
	if v, ok := payload.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return nil
}

// Create validates and stores a new document, returning the stored record
// with its server-assigned metadata.
func (c *Collection[T]) Create(ctx context.Context, payload T) (*DatabaseRecord[T], error) {
	var stored *DatabaseRecord[T]
	err := c.withEvents("create", RecordCreateStart, RecordCreateSuccess, RecordCreateFailed, "",
		func() error {
			if err := validatePayload(payload); err != nil {
				return err
			}
			meta, err := c.db.CreateDocument(ctx, c.name, payload)
			if err != nil {
				return err
			}
			stored = &DatabaseRecord[T]{Meta: meta, Record: payload}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// Find fetches a document by key.
func (c *Collection[T]) Find(ctx context.Context, key string) (*DatabaseRecord[T], error) {
	var stored DatabaseRecord[T]
	if err := c.db.ReadDocument(ctx, c.name, key, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Save validates and replaces the stored document, refreshing the record's
// revision in place.
func (c *Collection[T]) Save(ctx context.Context, r *DatabaseRecord[T]) error {
	return c.withEvents("save", RecordSaveStart, RecordSaveSuccess, RecordSaveFailed, r.Key,
		func() error {
			if r.Key == "" {
				return ErrMissingKey
			}
			if err := validatePayload(r.Record); err != nil {
				return err
			}
			meta, err := c.db.ReplaceDocument(ctx, c.name, r.Key, r)
			if err != nil {
				return err
			}
			r.Key = meta.Key
			r.ID = meta.ID
			r.Rev = meta.Rev
			return nil
		})
}

// Delete removes the stored document.
func (c *Collection[T]) Delete(ctx context.Context, r *DatabaseRecord[T]) error {
	return c.withEvents("delete", RecordDeleteStart, RecordDeleteSuccess, RecordDeleteFailed, r.Key,
		func() error {
			if r.Key == "" {
				return ErrMissingKey
			}
			return c.db.RemoveDocument(ctx, c.name, r.Key)
		})
}

// Get executes a query descriptor and decodes every result document.
func (c *Collection[T]) Get(ctx context.Context, q query.Query) ([]*DatabaseRecord[T], error) {
	var records []*DatabaseRecord[T]
	err := c.withEvents("query", RecordQueryStart, RecordQuerySuccess, RecordQueryFailed, "",
		func() error {
			raw, err := c.db.RunQuery(ctx, q)
			if err != nil {
				return err
			}
			records = make([]*DatabaseRecord[T], 0, len(raw))
			for _, doc := range raw {
				var r DatabaseRecord[T]
				if err := json.Unmarshal(doc, &r); err != nil {
					return fmt.Errorf("decoding %s document: %w", c.name, err)
				}
				records = append(records, &r)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// First executes a query descriptor and returns the first match, ErrNotFound
// when nothing matches.
func (c *Collection[T]) First(ctx context.Context, q query.Query) (*DatabaseRecord[T], error) {
	records, err := c.Get(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: collection %s", ErrNotFound, c.name)
	}
	return records[0], nil
}

// Exists reports whether a query descriptor matches any document.
func (c *Collection[T]) Exists(ctx context.Context, q query.Query) (bool, error) {
	records, err := c.Get(ctx, q.Limit(1))
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}
