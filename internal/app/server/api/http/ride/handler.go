package ride

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ridejournal/internal/app/server/api/http/httperr"
	"ridejournal/internal/domain/ride"
)

const notFound = "Ride not found"

type Handler struct {
	service    ride.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service ride.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.statsOp(), h.stats)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	rides, err := h.service.List(ctx)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	if input.Year > 0 {
		rides = ride.FilterByYear(rides, input.Year)
	}

	return &listOutput{Body: rides}, nil
}

func (h *Handler) stats(ctx context.Context, _ *struct{}) (*statsOutput, error) {
	st, err := h.service.Stats(ctx)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &statsOutput{Body: st}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*rideOutput, error) {
	r, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &rideOutput{Body: r}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*rideOutput, error) {
	r, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &rideOutput{Body: r}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*rideOutput, error) {
	r, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &rideOutput{Body: r}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, httperr.From(err, notFound)
	}
	return &messageOutput{
		Body: messageResponse{Message: "Ride deleted successfully"},
	}, nil
}
