package photo

import (
	"context"
)

// Repository хранит метаданные фотографий; сами файлы лежат в каталоге uploads.
// Get, Update и Delete возвращают record.ErrNotFound для неизвестного идентификатора.
type Repository interface {
	List(ctx context.Context) ([]Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	Create(ctx context.Context, photo *Photo) error
	Update(ctx context.Context, photo *Photo) error
	Delete(ctx context.Context, id string) error
}
