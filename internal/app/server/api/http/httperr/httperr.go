// Package httperr переводит ошибки доменного слоя в ответы huma.
package httperr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"ridejournal/internal/domain/record"
)

// From возвращает ошибку huma для err. notFound - текст ответа 404.
func From(err error, notFound string) error {
	var verr *record.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]error, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + f.Field,
				Message:  f.Message,
			})
		}
		return huma.Error422UnprocessableEntity("validation failed", details...)
	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound(notFound)
	default:
		return huma.Error500InternalServerError("internal server error")
	}
}
