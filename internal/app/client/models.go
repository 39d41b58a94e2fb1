package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Пространства имен локального кэша
const (
	NamespaceRides  = "ridejournal.rides"
	NamespacePhotos = "ridejournal.photos"
)

// BlobStore - долговременное хранилище блобов по ключу (SQLite или память)
type BlobStore interface {
	Get(ctx context.Context, namespace string) ([]byte, bool, error)
	Put(ctx context.Context, namespace string, payload []byte) error
}

// MemoryCache - временное in-memory хранилище, когда файл кэша недоступен
type MemoryCache struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		blobs: make(map[string][]byte),
	}
}

func (m *MemoryCache) Get(_ context.Context, namespace string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.blobs[namespace]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

func (m *MemoryCache) Put(_ context.Context, namespace string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[namespace] = append([]byte(nil), payload...)
	return nil
}

// jsonCache - LocalCache записей одного вида: весь список одним JSON-блобом
type jsonCache[T any] struct {
	store     BlobStore
	namespace string
}

func NewJSONCache[T any](store BlobStore, namespace string) LocalCache[T] {
	return &jsonCache[T]{store: store, namespace: namespace}
}

// ReadAll возвращает пустой список, если кэш еще не записывался
func (c *jsonCache[T]) ReadAll(ctx context.Context) ([]T, error) {
	payload, ok, err := c.store.Get(ctx, c.namespace)
	if err != nil {
		return nil, err
	}
	if !ok || len(payload) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("ошибка разбора кэша %s: %w", c.namespace, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// WriteAll сериализует список до записи: при ошибке сериализации старый блоб не трогается
func (c *jsonCache[T]) WriteAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("ошибка сериализации кэша %s: %w", c.namespace, err)
	}
	return c.store.Put(ctx, c.namespace, payload)
}
