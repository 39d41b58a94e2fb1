package photo

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ridejournal/internal/app/server/api/http/httperr"
	"ridejournal/internal/domain/photo"
)

const notFound = "Photo not found"

type Handler struct {
	service    photo.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service photo.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.yearsOp(), h.years)
	huma.Register(api, h.createOp(), h.upload)
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	photos, err := h.service.List(ctx, input.Year)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &listOutput{Body: photos}, nil
}

func (h *Handler) years(ctx context.Context, _ *struct{}) (*yearsOutput, error) {
	years, err := h.service.Years(ctx)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &yearsOutput{Body: years}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*photoOutput, error) {
	p, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &photoOutput{Body: p}, nil
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*photoOutput, error) {
	p, err := h.service.Upload(ctx, input.Body)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &photoOutput{Body: p}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*photoOutput, error) {
	p, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &photoOutput{Body: p}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &messageOutput{
		Body: messageResponse{Message: "Photo deleted successfully"},
	}, nil
}
