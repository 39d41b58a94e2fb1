package ride

import (
	"context"
)

// Repository - хранилище поездок на стороне сервера (JSON-файл или документная БД).
// Get, Update и Delete возвращают record.ErrNotFound для неизвестного идентификатора.
type Repository interface {
	List(ctx context.Context) ([]Ride, error)
	Get(ctx context.Context, id string) (*Ride, error)
	Create(ctx context.Context, ride *Ride) error
	Update(ctx context.Context, ride *Ride) error
	Delete(ctx context.Context, id string) error
}

// PhotoIndex отвечает, существует ли фотография с таким идентификатором
type PhotoIndex interface {
	Has(ctx context.Context, id string) (bool, error)
}
