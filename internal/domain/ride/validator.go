package ride

import (
	"math"
	"strings"

	"ridejournal/internal/domain/record"
)

type validator struct {
	record.ValidationError
}

func newValidator() *validator {
	return &validator{}
}

func (v *validator) name(name string) {
	if strings.TrimSpace(name) == "" {
		v.Add("name", "обязательное поле")
	}
}

func (v *validator) coordinates(lat, lng float64) {
	if !finite(lat) || lat < -90 || lat > 90 {
		v.Add("location.lat", "широта должна быть в диапазоне [-90, 90]")
	}
	if !finite(lng) || lng < -180 || lng > 180 {
		v.Add("location.lng", "долгота должна быть в диапазоне [-180, 180]")
	}
}

func (v *validator) nonNegative(field string, value float64) {
	if !finite(value) || value < 0 {
		v.Add(field, "значение не может быть отрицательным")
	}
}

func (v *validator) OrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return &record.ValidationError{Fields: v.Fields}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
