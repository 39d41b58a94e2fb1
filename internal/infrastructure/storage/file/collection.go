// Package file хранит записи сервера в JSON-файле (по массиву на вид записей).
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/slog"

	"ridejournal/internal/domain/record"
)

// Collection - записи одного вида в отдельном файле. Файл читается и
// перезаписывается целиком на каждую операцию; отсутствующий файл - пустой список.
type Collection[T record.Identified] struct {
	path string
	mu   sync.Mutex
	log  *slog.Logger
}

func NewCollection[T record.Identified](path string, log *slog.Logger) *Collection[T] {
	return &Collection[T]{
		path: path,
		log:  log.With("component", "file_storage", "file", path),
	}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.read()
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return nil, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return nil, record.ErrNotFound
	}
	item := items[i]
	return &item, nil
}

func (c *Collection[T]) Create(ctx context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	if indexOf(items, (*item).RecordID()) >= 0 {
		return fmt.Errorf("duplicate id %s", (*item).RecordID())
	}
	return c.write(append(items, *item))
}

func (c *Collection[T]) Update(ctx context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	i := indexOf(items, (*item).RecordID())
	if i < 0 {
		return record.ErrNotFound
	}
	items[i] = *item
	return c.write(items)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	i := indexOf(items, id)
	if i < 0 {
		return record.ErrNotFound
	}
	return c.write(append(items[:i], items[i+1:]...))
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Error("data file is corrupted", "error", err)
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// write пишет во временный файл и переименовывает его, чтобы не оставить обрезанный JSON
func (c *Collection[T]) write(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}

func indexOf[T record.Identified](items []T, id string) int {
	for i := range items {
		if items[i].RecordID() == id {
			return i
		}
	}
	return -1
}
