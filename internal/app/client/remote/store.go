package remote

import (
	"context"
	"net/http"
	"net/url"
)

// Store - CRUD одного вида записей поверх API: T - запись, D - черновик
type Store[T any, D any] struct {
	client *HTTPClient
	path   string
}

// NewStore создает адаптер коллекции, path - например "/api/rides"
func NewStore[T any, D any](client *HTTPClient, path string) *Store[T, D] {
	return &Store[T, D]{client: client, path: path}
}

func (s *Store[T, D]) ListAll(ctx context.Context) Result[[]T] {
	var items []T
	if err := s.client.do(ctx, http.MethodGet, s.path, nil, &items); err != nil {
		return resultOf[[]T](err)
	}
	if items == nil {
		items = []T{}
	}
	return ok(items)
}

func (s *Store[T, D]) Create(ctx context.Context, draft D) Result[T] {
	var created T
	if err := s.client.do(ctx, http.MethodPost, s.path, draft, &created); err != nil {
		return resultOf[T](err)
	}
	return ok(created)
}

func (s *Store[T, D]) Update(ctx context.Context, id string, rec T) Result[T] {
	var updated T
	if err := s.client.do(ctx, http.MethodPut, s.itemPath(id), rec, &updated); err != nil {
		return resultOf[T](err)
	}
	return ok(updated)
}

func (s *Store[T, D]) Delete(ctx context.Context, id string) Result[struct{}] {
	if err := s.client.do(ctx, http.MethodDelete, s.itemPath(id), nil, nil); err != nil {
		return resultOf[struct{}](err)
	}
	return ok(struct{}{})
}

func (s *Store[T, D]) itemPath(id string) string {
	return s.path + "/" + url.PathEscape(id)
}
