package ride

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "rides-list",
		Method:      http.MethodGet,
		Path:        "/api/rides",
		Summary:     "Список поездок",
		Tags:        []string{"rides"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "rides-stats",
		Method:      http.MethodGet,
		Path:        "/api/rides/stats",
		Summary:     "Сводка по поездкам",
		Description: "Число поездок, суммарные дистанция и набор высоты, число мест на карте.",
		Tags:        []string{"rides"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "rides-create",
		Method:        http.MethodPost,
		Path:          "/api/rides",
		Summary:       "Добавить поездку",
		Description:   "Обязательны name, date и location (lat, lng). Идентификатор назначает сервер.",
		Tags:          []string{"rides"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "rides-find",
		Method:      http.MethodGet,
		Path:        "/api/rides/{id}",
		Summary:     "Получить поездку",
		Tags:        []string{"rides"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "rides-update",
		Method:      http.MethodPut,
		Path:        "/api/rides/{id}",
		Summary:     "Обновить поездку",
		Description: "Переданные поля заменяют сохраненные; id и createdAt не меняются.",
		Tags:        []string{"rides"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "rides-delete",
		Method:      http.MethodDelete,
		Path:        "/api/rides/{id}",
		Summary:     "Удалить поездку",
		Description: "Фотографии поездки не удаляются.",
		Tags:        []string{"rides"},
		Middlewares: h.middleware,
	}
}
