package ride

import (
	"ridejournal/internal/domain/ride"
)

type listInput struct {
	Year int `query:"year" minimum:"0" doc:"Только поездки указанного года"`
}

type listOutput struct {
	Body []ride.Ride
}

type findInput struct {
	ID string `path:"id" doc:"Идентификатор поездки"`
}

type rideOutput struct {
	Body *ride.Ride
}

type createInput struct {
	Body ride.Draft
}

type updateInput struct {
	ID   string `path:"id" doc:"Идентификатор поездки"`
	Body ride.Patch
}

type deleteInput struct {
	ID string `path:"id" doc:"Идентификатор поездки"`
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message" example:"Ride deleted successfully"`
}

type statsOutput struct {
	Body ride.Stats
}
