package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
)

// Kinds of documents stored in the shared documents table
const (
	KindRides  = "rides"
	KindPhotos = "photos"
)

// DB - часть pgxpool.Pool, которой достаточно коллекции
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Collection хранит записи одного вида как JSONB-документы.
// Порядок выдачи - порядок вставки (колонка seq).
type Collection[T record.Identified] struct {
	db   DB
	kind string
	log  *slog.Logger
}

func NewCollection[T record.Identified](db DB, kind string, log *slog.Logger) *Collection[T] {
	return &Collection[T]{
		db:   db,
		kind: kind,
		log:  log.With("component", "document_repository", "kind", kind),
	}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	const query = `
		SELECT body
		FROM documents
		WHERE kind = $1
		ORDER BY seq`

	rows, err := c.db.Query(ctx, query, c.kind)
	if err != nil {
		c.log.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.kind, err)
		}
		var item T
		if err := json.Unmarshal(body, &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", c.kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", c.kind, err)
	}

	return items, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	const query = `
		SELECT body
		FROM documents
		WHERE kind = $1 AND id = $2`

	var body []byte
	err := c.db.QueryRow(ctx, query, c.kind, id).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		c.log.Error("failed to get document", "id", id, "error", err)
		return nil, fmt.Errorf("get %s: %w", c.kind, err)
	}

	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.kind, err)
	}
	return &item, nil
}

func (c *Collection[T]) Create(ctx context.Context, item *T) error {
	const query = `
		INSERT INTO documents (kind, id, body)
		VALUES ($1, $2, $3)`

	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.kind, err)
	}

	if _, err := c.db.Exec(ctx, query, c.kind, (*item).RecordID(), body); err != nil {
		c.log.Error("failed to create document", "id", (*item).RecordID(), "error", err)
		return fmt.Errorf("create %s: %w", c.kind, err)
	}
	return nil
}

func (c *Collection[T]) Update(ctx context.Context, item *T) error {
	const query = `
		UPDATE documents
		SET body = $3, updated_at = now()
		WHERE kind = $1 AND id = $2`

	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.kind, err)
	}

	tag, err := c.db.Exec(ctx, query, c.kind, (*item).RecordID(), body)
	if err != nil {
		c.log.Error("failed to update document", "id", (*item).RecordID(), "error", err)
		return fmt.Errorf("update %s: %w", c.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	const query = `
		DELETE FROM documents
		WHERE kind = $1 AND id = $2`

	tag, err := c.db.Exec(ctx, query, c.kind, id)
	if err != nil {
		c.log.Error("failed to delete document", "id", id, "error", err)
		return fmt.Errorf("delete %s: %w", c.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrNotFound
	}
	return nil
}
