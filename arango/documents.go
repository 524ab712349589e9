package arango

import (
	"context"
	"encoding/json"
	"fmt"

	driver "github.com/arangodb/go-driver"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asaidimu/go-arachne/core/record"
)

// documentMeta converts driver metadata into the record layer's Meta.
func documentMeta(meta driver.DocumentMeta) record.Meta {
	return record.Meta{Key: meta.Key, ID: string(meta.ID), Rev: meta.Rev}
}

// CreateDocument stores a new document and returns its metadata. With
// Config.GenerateKeys set, documents without a _key get a client-side UUID
// key before the write.
func (db *Database) CreateDocument(ctx context.Context, collection string, document any) (record.Meta, error) {
	col, err := db.collection(ctx, collection)
	if err != nil {
		return record.Meta{}, err
	}
	payload, err := db.prepareDocument(document)
	if err != nil {
		return record.Meta{}, err
	}

	db.logger.Debug("creating document", zap.String("collection", collection))
	meta, err := col.CreateDocument(ctx, payload)
	if err != nil {
		return record.Meta{}, mapError(err)
	}
	return documentMeta(meta), nil
}

// ReadDocument fetches a document by key into out.
func (db *Database) ReadDocument(ctx context.Context, collection, key string, out any) error {
	col, err := db.collection(ctx, collection)
	if err != nil {
		return err
	}
	if _, err := col.ReadDocument(ctx, key, out); err != nil {
		return mapError(err)
	}
	return nil
}

// ReplaceDocument overwrites a document and returns the fresh metadata.
func (db *Database) ReplaceDocument(ctx context.Context, collection, key string, document any) (record.Meta, error) {
	col, err := db.collection(ctx, collection)
	if err != nil {
		return record.Meta{}, err
	}

	db.logger.Debug("replacing document",
		zap.String("collection", collection), zap.String("key", key))
	meta, err := col.ReplaceDocument(ctx, key, document)
	if err != nil {
		return record.Meta{}, mapError(err)
	}
	return documentMeta(meta), nil
}

// RemoveDocument deletes a document by key.
func (db *Database) RemoveDocument(ctx context.Context, collection, key string) error {
	col, err := db.collection(ctx, collection)
	if err != nil {
		return err
	}

	db.logger.Debug("removing document",
		zap.String("collection", collection), zap.String("key", key))
	if _, err := col.RemoveDocument(ctx, key); err != nil {
		return mapError(err)
	}
	return nil
}

// prepareDocument injects a UUID _key when client-side key generation is on
// and the document carries none.
func (db *Database) prepareDocument(document any) (any, error) {
	if !db.cfg.GenerateKeys {
		return document, nil
	}

	encoded, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	if _, ok := doc["_key"]; !ok {
		key, err := json.Marshal(uuid.NewString())
		if err != nil {
			return nil, err
		}
		doc["_key"] = key
	}
	return doc, nil
}
