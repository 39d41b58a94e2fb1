package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache хранит по одному JSON-блобу на пространство имен
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("ошибка создания директории кэша: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	cache := &SQLiteCache{db: db}

	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return cache, nil
}

func (s *SQLiteCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS cache (
			namespace TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	return err
}

// Get возвращает блоб пространства имен; ok == false, если его еще нет
func (s *SQLiteCache) Get(ctx context.Context, namespace string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM cache WHERE namespace = ?", namespace,
	).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения кэша %s: %w", namespace, err)
	}
	return payload, true, nil
}

// Put атомарно заменяет блоб пространства имен
func (s *SQLiteCache) Put(ctx context.Context, namespace string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache (namespace, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, namespace, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка записи кэша %s: %w", namespace, err)
	}
	return nil
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
