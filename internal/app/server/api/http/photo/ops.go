package photo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-list",
		Method:      http.MethodGet,
		Path:        "/api/photos",
		Summary:     "Список фотографий",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) yearsOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-years",
		Method:      http.MethodGet,
		Path:        "/api/photos/years",
		Summary:     "Годы съемки",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "photos-create",
		Method:        http.MethodPost,
		Path:          "/api/photos",
		Summary:       "Загрузить фотографию",
		Description:   "Содержимое файла передается в поле data (base64). Файл доступен по url из ответа.",
		Tags:          []string{"photos"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	op := h.createOp()
	op.OperationID = "photos-upload"
	op.Path = "/api/photos/upload"
	return op
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-find",
		Method:      http.MethodGet,
		Path:        "/api/photos/{id}",
		Summary:     "Получить фотографию",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-update",
		Method:      http.MethodPut,
		Path:        "/api/photos/{id}",
		Summary:     "Обновить метаданные фотографии",
		Description: "Меняются только dateTaken, description и tags.",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "photos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/photos/{id}",
		Summary:     "Удалить фотографию",
		Description: "Ссылки на фотографию в поездках остаются.",
		Tags:        []string{"photos"},
		Middlewares: h.middleware,
	}
}
