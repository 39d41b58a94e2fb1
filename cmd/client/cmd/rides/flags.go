package rides

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ridejournal/internal/app/client"
	"ridejournal/internal/domain/ride"
)

// rideFlags - общие флаги add и edit
type rideFlags struct {
	name         string
	date         string
	place        string
	locationName string
	lat          float64
	lng          float64
	distance     float64
	elevation    float64
	notes        string
	photos       []string
}

func (f *rideFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "name", "n", "", "название поездки")
	fs.StringVarP(&f.date, "date", "d", "", "дата поездки (YYYY-MM-DD)")
	fs.StringVar(&f.place, "place", "", "найти координаты по названию места")
	fs.StringVar(&f.locationName, "location-name", "", "название места старта")
	fs.Float64Var(&f.lat, "lat", 0, "широта старта")
	fs.Float64Var(&f.lng, "lng", 0, "долгота старта")
	fs.Float64Var(&f.distance, "distance", 0, "дистанция, км")
	fs.Float64Var(&f.elevation, "elevation", 0, "набор высоты, м")
	fs.StringVar(&f.notes, "notes", "", "заметки")
	fs.StringSliceVar(&f.photos, "photo", nil, "ID фотографии (можно указать несколько раз)")
}

// location определяет координаты: явные --lat/--lng важнее найденных по --place
func (f *rideFlags) location(ctx context.Context, app *client.App, fs *pflag.FlagSet) (*ride.DraftLocation, error) {
	latSet, lngSet := fs.Changed("lat"), fs.Changed("lng")
	if !latSet && !lngSet && f.place == "" {
		if fs.Changed("location-name") {
			return &ride.DraftLocation{Name: f.locationName}, nil
		}
		return nil, nil
	}

	loc := &ride.DraftLocation{Name: f.locationName}
	if f.place != "" && !(latSet && lngSet) {
		places, err := app.Geocoder().Search(ctx, f.place)
		if err != nil {
			return nil, fmt.Errorf("не удалось найти место %q: %w", f.place, err)
		}
		best := places[0]
		lat, lng := best.Lat, best.Lng
		loc.Lat, loc.Lng = &lat, &lng
		if loc.Name == "" {
			loc.Name = best.Name
		}
	}
	if latSet {
		lat := f.lat
		loc.Lat = &lat
	}
	if lngSet {
		lng := f.lng
		loc.Lng = &lng
	}
	return loc, nil
}
