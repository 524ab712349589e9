package record

import (
	"context"
	"fmt"
)

// Link stores an edge document connecting two stored records. The edge
// payload E must name an edge collection; both endpoints must already be
// stored so their document ids can be bound to _from and _to.
func Link[E Record, A Record, B Record](
	ctx context.Context,
	db Database,
	from *DatabaseRecord[A],
	to *DatabaseRecord[B],
	edge E,
) (*DatabaseRecord[E], error) {
	if from.ID == "" || to.ID == "" {
		return nil, fmt.Errorf("%w: both link endpoints must be stored", ErrMissingKey)
	}
	if err := validatePayload(edge); err != nil {
		return nil, err
	}

	stored := &DatabaseRecord[E]{
		Meta:   Meta{From: from.ID, To: to.ID},
		Record: edge,
	}
	meta, err := db.CreateDocument(ctx, edge.CollectionName(), stored)
	if err != nil {
		return nil, err
	}
	stored.Key = meta.Key
	stored.ID = meta.ID
	stored.Rev = meta.Rev
	return stored, nil
}
