package photo

import (
	"ridejournal/internal/domain/photo"
)

type listInput struct {
	Year int `query:"year" minimum:"0" doc:"Только фотографии, снятые в указанном году"`
}

type listOutput struct {
	Body []photo.Photo
}

type yearsOutput struct {
	Body []int `doc:"Годы съемки, новые первыми"`
}

type findInput struct {
	ID string `path:"id" doc:"Идентификатор фотографии"`
}

type photoOutput struct {
	Body *photo.Photo
}

type uploadInput struct {
	Body photo.Draft
}

type updateInput struct {
	ID   string `path:"id" doc:"Идентификатор фотографии"`
	Body photo.Patch
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message" example:"Photo deleted successfully"`
}
