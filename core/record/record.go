// Package record maps typed Go structs onto database documents. A struct
// becomes storable by implementing Record; DatabaseRecord wraps the payload
// together with the document metadata the server maintains (_key, _id, _rev
// and, for edges, _from and _to).
package record

import (
	"encoding/json"
	"fmt"

	"github.com/asaidimu/go-arachne/core/query"
)

// Record is implemented by any struct that can be stored as a document.
type Record interface {
	// CollectionName returns the collection the type is stored in.
	CollectionName() string
}

// Validator is optionally implemented by records that carry their own
// validation rules. Create and Save refuse payloads whose Validate fails.
type Validator interface {
	Validate() error
}

// Meta holds the server-maintained document metadata.
type Meta struct {
	Key string `json:"_key,omitempty"`
	ID  string `json:"_id,omitempty"`
	Rev string `json:"_rev,omitempty"`
	// From and To are set for edge documents only.
	From string `json:"_from,omitempty"`
	To   string `json:"_to,omitempty"`
}

// DatabaseRecord wraps a stored payload with its document metadata. The
// payload's fields serialize inline next to the metadata, matching the
// document layout the server stores and returns.
type DatabaseRecord[T Record] struct {
	Meta
	Record T
}

// MarshalJSON inlines the payload fields alongside the metadata.
func (r DatabaseRecord[T]) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(r.Record)
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("record payload must serialize to a JSON object: %w", err)
	}

	meta, err := json.Marshal(r.Meta)
	if err != nil {
		return nil, err
	}
	var metaDoc map[string]json.RawMessage
	if err := json.Unmarshal(meta, &metaDoc); err != nil {
		return nil, err
	}
	for k, v := range metaDoc {
		doc[k] = v
	}
	return json.Marshal(doc)
}

// UnmarshalJSON splits a stored document back into metadata and payload.
func (r *DatabaseRecord[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Meta); err != nil {
		return err
	}
	return json.Unmarshal(data, &r.Record)
}

// Query returns a root query descriptor over T's collection.
func Query[T Record]() query.Query {
	var zero T
	return query.NewQuery(zero.CollectionName())
}

// OutboundQuery returns a traversal descriptor starting at this document and
// following outbound edges of edgeCollection between min and max hops.
func (r *DatabaseRecord[T]) OutboundQuery(min, max uint, edgeCollection string) query.Query {
	return query.Outbound(min, max, edgeCollection, r.ID)
}

// InboundQuery is OutboundQuery for inbound edges.
func (r *DatabaseRecord[T]) InboundQuery(min, max uint, edgeCollection string) query.Query {
	return query.Inbound(min, max, edgeCollection, r.ID)
}

// AnyQuery is OutboundQuery for edges in either direction.
func (r *DatabaseRecord[T]) AnyQuery(min, max uint, edgeCollection string) query.Query {
	return query.Any(min, max, edgeCollection, r.ID)
}
