package rides

import (
	"fmt"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/app/client"
	"ridejournal/internal/domain/record"
	"ridejournal/internal/domain/ride"
)

var editFlags rideFlags

var EditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Изменить поездку",
	Long: `Изменение поездки по ID. Меняются только переданные флаги,
идентификатор и дата создания сохраняются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		current, err := findRide(app, args[0])
		if err != nil {
			return err
		}

		next, err := editFlags.apply(cmd, app, current)
		if err != nil {
			return err
		}

		updated, err := app.Rides().Update(cmd.Context(), current.ID, next)
		if err != nil {
			return fmt.Errorf("ошибка обновления поездки: %w", err)
		}

		reportSaved(p, app)
		if p.JSONMode() {
			return p.JSON(updated)
		}
		p.Success("Поездка %s обновлена", updated.ID)
		return nil
	},
}

// apply переносит измененные флаги на копию поездки
func (f *rideFlags) apply(cmd *cobra.Command, app *client.App, r ride.Ride) (ride.Ride, error) {
	fs := cmd.Flags()

	if fs.Changed("name") {
		r.Name = f.name
	}
	if fs.Changed("date") {
		date, err := ride.ParseDate(f.date)
		if err != nil {
			return r, fmt.Errorf("%w: date: ожидается дата в формате YYYY-MM-DD", record.ErrValidation)
		}
		r.Date = date
	}

	loc, err := f.location(cmd.Context(), app, fs)
	if err != nil {
		return r, err
	}
	if loc != nil {
		if fs.Changed("location-name") || f.place != "" {
			r.Location.Name = loc.Name
		}
		if loc.Lat != nil {
			r.Location.Lat = *loc.Lat
		}
		if loc.Lng != nil {
			r.Location.Lng = *loc.Lng
		}
	}

	if fs.Changed("distance") {
		r.Distance = f.distance
	}
	if fs.Changed("elevation") {
		r.Elevation = f.elevation
	}
	if fs.Changed("notes") {
		r.Notes = f.notes
	}
	if fs.Changed("photo") {
		r.PhotoIDs = append([]string{}, f.photos...)
	}
	return r, nil
}

func init() {
	editFlags.register(EditCmd)
}
