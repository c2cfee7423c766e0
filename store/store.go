// Package store presents one logical document store with two backings: a
// Postgres JSONB table for deployments and an in-memory map store for local
// development. The backing is chosen once at process start and never
// revisited; callers stay backing-agnostic.
package store

import (
	"context"
)

// Collection names
const (
	Products = "products"
	Variants = "variants"
	Orders   = "orders"
	Settings = "settings"
)

// SettingsKey is the fixed identifier of the settings singleton document.
const SettingsKey = "main"

// Document is the unit of storage: a JSON object keyed by its API field
// names.
type Document = map[string]any

// Collection is the capability set every entity kind is accessed through.
// Both backings guarantee the same observable behavior for each operation.
type Collection interface {
	// GetAll returns every document in the collection, unordered.
	GetAll(ctx context.Context) ([]Document, error)

	// GetAllOrdered returns every document ordered by the named field,
	// descending when desc is true.
	GetAllOrdered(ctx context.Context, field string, desc bool) ([]Document, error)

	// GetByID returns the document with the given id, or lib.ErrNotFound.
	GetByID(ctx context.Context, id string) (Document, error)

	// Where returns the documents whose field equals value.
	Where(ctx context.Context, field string, value any) ([]Document, error)

	// Create stores a new document under a store-assigned id and returns it.
	// The id is also written into the document under "id".
	Create(ctx context.Context, data Document) (string, error)

	// UpdateMerge overwrites only the supplied fields of an existing
	// document. Returns lib.ErrNotFound when the id does not exist.
	UpdateMerge(ctx context.Context, id string, data Document) error

	// Set writes a document under a caller-chosen id, creating it when
	// absent. With merge true existing fields not present in data survive.
	Set(ctx context.Context, id string, data Document, merge bool) error

	// Delete removes a document. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteWhere removes every document whose field equals value and
	// returns the number removed.
	DeleteWhere(ctx context.Context, field string, value any) (int, error)
}

type Store interface {
	Collection(name string) Collection

	// Mode reports the active backing, "postgres" or "memory".
	Mode() string

	Health(ctx context.Context) error
	Close() error
}
