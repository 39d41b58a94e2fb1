package ride

import (
	"time"
)

type Location struct {
	Name string  `json:"name,omitempty" doc:"Название места"`
	Lat  float64 `json:"lat" doc:"Широта" minimum:"-90" maximum:"90"`
	Lng  float64 `json:"lng" doc:"Долгота" minimum:"-180" maximum:"180"`
}

type Ride struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Date      Date       `json:"date"`
	Location  Location   `json:"location"`
	Distance  float64    `json:"distance"`
	Elevation float64    `json:"elevation"`
	Notes     string     `json:"notes"`
	PhotoIDs  []string   `json:"photoIds"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RecordID возвращает идентификатор поездки
func (r Ride) RecordID() string {
	return r.ID
}

// Coordinates нужны для кластеризации на карте
func (r Ride) Coordinates() (lat, lng float64) {
	return r.Location.Lat, r.Location.Lng
}

// Validate проверяет поездку целиком (используется при обновлении)
func (r Ride) Validate() error {
	v := newValidator()
	v.name(r.Name)
	if r.Date.IsZero() {
		v.Add("date", "обязательное поле")
	}
	v.coordinates(r.Location.Lat, r.Location.Lng)
	v.nonNegative("distance", r.Distance)
	v.nonNegative("elevation", r.Elevation)
	return v.OrNil()
}

// Revise превращает r в новую версию original: идентификатор и дата создания
// всегда берутся из original, какие бы значения ни пришли в r.
func (r Ride) Revise(original Ride, now time.Time) Ride {
	r.ID = original.ID
	r.CreatedAt = original.CreatedAt
	r.UpdatedAt = &now
	if r.PhotoIDs == nil {
		r.PhotoIDs = []string{}
	}
	return r
}

// HasPhoto проверяет ссылку на фотографию
func (r Ride) HasPhoto(photoID string) bool {
	for _, id := range r.PhotoIDs {
		if id == photoID {
			return true
		}
	}
	return false
}

// Draft - данные новой поездки до назначения идентификатора.
// Указатели отличают "не передано" от нулевого значения.
type Draft struct {
	Name      string         `json:"name,omitempty" doc:"Название поездки"`
	Date      string         `json:"date,omitempty" doc:"Дата поездки, YYYY-MM-DD" example:"2024-05-01"`
	Location  *DraftLocation `json:"location,omitempty" doc:"Координаты старта"`
	Distance  *float64       `json:"distance,omitempty" doc:"Дистанция, км"`
	Elevation *float64       `json:"elevation,omitempty" doc:"Набор высоты, м"`
	Notes     string         `json:"notes,omitempty" doc:"Заметки"`
	PhotoIDs  []string       `json:"photoIds,omitempty" doc:"Идентификаторы фотографий"`
}

type DraftLocation struct {
	Name string   `json:"name,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Validate проверяет обязательные поля: name, date, location.lat, location.lng
func (d Draft) Validate() error {
	v := newValidator()
	v.name(d.Name)

	if d.Date == "" {
		v.Add("date", "обязательное поле")
	} else if _, err := ParseDate(d.Date); err != nil {
		v.Add("date", "ожидается дата в формате YYYY-MM-DD")
	}

	switch {
	case d.Location == nil:
		v.Add("location", "обязательное поле")
	case d.Location.Lat == nil || d.Location.Lng == nil:
		if d.Location.Lat == nil {
			v.Add("location.lat", "обязательное поле")
		}
		if d.Location.Lng == nil {
			v.Add("location.lng", "обязательное поле")
		}
	default:
		v.coordinates(*d.Location.Lat, *d.Location.Lng)
	}

	if d.Distance != nil {
		v.nonNegative("distance", *d.Distance)
	}
	if d.Elevation != nil {
		v.nonNegative("elevation", *d.Elevation)
	}

	return v.OrNil()
}

// Build собирает поездку из проверенного черновика.
// Отсутствующие distance/elevation становятся 0, photoIds - пустым списком.
func (d Draft) Build(id string, now time.Time) Ride {
	date, _ := ParseDate(d.Date)

	r := Ride{
		ID:        id,
		Name:      d.Name,
		Date:      date,
		Notes:     d.Notes,
		PhotoIDs:  append([]string{}, d.PhotoIDs...),
		CreatedAt: now,
	}
	if d.Location != nil {
		r.Location.Name = d.Location.Name
		if d.Location.Lat != nil {
			r.Location.Lat = *d.Location.Lat
		}
		if d.Location.Lng != nil {
			r.Location.Lng = *d.Location.Lng
		}
	}
	if d.Distance != nil {
		r.Distance = *d.Distance
	}
	if d.Elevation != nil {
		r.Elevation = *d.Elevation
	}

	return r
}

// Patch - частичное обновление: применяются только переданные поля
type Patch struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name      *string   `json:"name,omitempty" doc:"Название поездки"`
	Date      *Date     `json:"date,omitempty" doc:"Дата поездки, YYYY-MM-DD"`
	Location  *Location `json:"location,omitempty" doc:"Координаты старта"`
	Distance  *float64  `json:"distance,omitempty" doc:"Дистанция, км"`
	Elevation *float64  `json:"elevation,omitempty" doc:"Набор высоты, м"`
	Notes     *string   `json:"notes,omitempty" doc:"Заметки"`
	PhotoIDs  []string  `json:"photoIds,omitempty" doc:"Идентификаторы фотографий"`
}

// Apply накладывает изменения на копию поездки
func (p Patch) Apply(r Ride) Ride {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Distance != nil {
		r.Distance = *p.Distance
	}
	if p.Elevation != nil {
		r.Elevation = *p.Elevation
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.PhotoIDs != nil {
		r.PhotoIDs = append([]string{}, p.PhotoIDs...)
	}
	return r
}

// FilterByYear оставляет поездки указанного года, порядок сохраняется
func FilterByYear(rides []Ride, year int) []Ride {
	out := make([]Ride, 0, len(rides))
	for _, r := range rides {
		if r.Date.Year() == year {
			out = append(out, r)
		}
	}
	return out
}
