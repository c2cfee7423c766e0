package store

import (
	"context"
	"database/sql"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// documentRow is the single table every collection lives in. Entities keep
// their document shape; the relational layer only provides durability,
// filtering and ordering.
type documentRow struct {
	bun.BaseModel `bun:"table:documents,alias:d"`

	Collection string    `bun:"collection,pk"`
	ID         string    `bun:"id,pk"`
	Data       []byte    `bun:"data,type:jsonb"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection text NOT NULL,
	id         text NOT NULL,
	data       jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

type postgresStore struct {
	db           *bun.DB
	queryTimeout time.Duration
}

// NewPostgres connects to the configured database, verifies the connection
// and makes sure the documents table exists.
func NewPostgres(cfg *structs.DatabaseConfig) (Store, error) {
	sqldb, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.MaxConns)
	sqldb.SetMaxIdleConns(cfg.MinConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(cfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, documentsSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure documents table: %w", err)
	}

	return &postgresStore{db: db, queryTimeout: cfg.QueryTimeout}, nil
}

func (ps *postgresStore) Collection(name string) Collection {
	return &postgresCollection{store: ps, name: name}
}

func (ps *postgresStore) Mode() string { return "postgres" }

func (ps *postgresStore) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return ps.db.PingContext(ctx)
}

func (ps *postgresStore) Close() error {
	return ps.db.Close()
}

type postgresCollection struct {
	store *postgresStore
	name  string
}

func (pc *postgresCollection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if pc.store.queryTimeout > 0 {
		return context.WithTimeout(ctx, pc.store.queryTimeout)
	}
	return ctx, func() {}
}

func (pc *postgresCollection) GetAll(ctx context.Context) ([]Document, error) {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	var rows []documentRow
	err := pc.store.db.NewSelect().
		Model(&rows).
		Where("collection = ?", pc.name).
		Scan(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return decodeRows(rows)
}

func (pc *postgresCollection) GetAllOrdered(ctx context.Context, field string, desc bool) ([]Document, error) {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	var rows []documentRow
	err := pc.store.db.NewSelect().
		Model(&rows).
		Where("collection = ?", pc.name).
		OrderExpr("data->>? "+dir, field).
		Scan(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return decodeRows(rows)
}

func (pc *postgresCollection) GetByID(ctx context.Context, id string) (Document, error) {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	var row documentRow
	err := pc.store.db.NewSelect().
		Model(&row).
		Where("collection = ? AND id = ?", pc.name, id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lib.ErrNotFound
		}
		return nil, lib.MapPgError(err)
	}
	return decodeRow(row)
}

func (pc *postgresCollection) Where(ctx context.Context, field string, value any) ([]Document, error) {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	var rows []documentRow
	err := pc.store.db.NewSelect().
		Model(&rows).
		Where("collection = ?", pc.name).
		Where("data->>? = ?", field, fmt.Sprint(value)).
		Scan(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return decodeRows(rows)
}

func (pc *postgresCollection) Create(ctx context.Context, data Document) (string, error) {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	id := uuid.NewString()
	doc := copyDocument(data)
	doc["id"] = id

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	row := &documentRow{
		Collection: pc.name,
		ID:         id,
		Data:       raw,
		CreatedAt:  time.Now(),
	}
	if _, err := pc.store.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return "", lib.MapPgError(err)
	}
	return id, nil
}

func (pc *postgresCollection) UpdateMerge(ctx context.Context, id string, data Document) error {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	patch, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}

	res, err := pc.store.db.ExecContext(ctx,
		"UPDATE documents SET data = data || ?::jsonb WHERE collection = ? AND id = ?",
		string(patch), pc.name, id)
	if err != nil {
		return lib.MapPgError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (pc *postgresCollection) Set(ctx context.Context, id string, data Document, merge bool) error {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	doc := copyDocument(data)
	doc["id"] = id
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	conflict := "data = EXCLUDED.data"
	if merge {
		conflict = "data = documents.data || EXCLUDED.data"
	}

	_, err = pc.store.db.ExecContext(ctx,
		"INSERT INTO documents (collection, id, data) VALUES (?, ?, ?::jsonb) "+
			"ON CONFLICT (collection, id) DO UPDATE SET "+conflict,
		pc.name, id, string(raw))
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

func (pc *postgresCollection) Delete(ctx context.Context, id string) error {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	_, err := pc.store.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?", pc.name, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

func (pc *postgresCollection) DeleteWhere(ctx context.Context, field string, value any) (int, error) {
	ctx, cancel := pc.withTimeout(ctx)
	defer cancel()

	res, err := pc.store.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND data->>? = ?",
		pc.name, field, fmt.Sprint(value))
	if err != nil {
		return 0, lib.MapPgError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return int(affected), nil
}

func decodeRow(row documentRow) (Document, error) {
	var doc Document
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return nil, fmt.Errorf("corrupt document %s/%s: %w", row.Collection, row.ID, err)
	}
	return doc, nil
}

func decodeRows(rows []documentRow) ([]Document, error) {
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
