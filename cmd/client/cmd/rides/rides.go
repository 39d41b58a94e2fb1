package rides

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/app/client"
	"ridejournal/internal/domain/record"
	"ridejournal/internal/domain/ride"
)

// RideCmd - родительская команда для всех операций с поездками
var RideCmd = &cobra.Command{
	Use:   "ride",
	Short: "Управление поездками",
	Long:  `Создание, просмотр, изменение и удаление поездок.`,
}

func init() {
	RideCmd.AddCommand(ListCmd, ShowCmd, AddCmd, EditCmd, DeleteCmd)
}

func findRide(app *client.App, id string) (ride.Ride, error) {
	r, ok := app.Rides().GetByID(id)
	if !ok {
		return ride.Ride{}, fmt.Errorf("поездка %s: %w", id, record.ErrNotFound)
	}
	return r, nil
}

// reportSaved сообщает, что запись осталась только в локальном кэше
func reportSaved(p *output.Printer, app *client.App) {
	if app.Rides().Mode() == client.ModeLocal {
		p.Warn(app.Rides().Advisory())
	}
}

func formatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func printRide(p *output.Printer, app *client.App, r ride.Ride) error {
	if p.JSONMode() {
		return p.JSON(r)
	}

	p.Title("%s", r.Name)
	p.Printf("ID:          %s\n", r.ID)
	p.Printf("Дата:        %s\n", r.Date)
	if r.Location.Name != "" {
		p.Printf("Место:       %s\n", r.Location.Name)
	}
	p.Printf("Координаты:  %.5f, %.5f\n", r.Location.Lat, r.Location.Lng)
	p.Printf("Дистанция:   %s км\n", formatKm(r.Distance))
	p.Printf("Набор:       %s м\n", formatMeters(r.Elevation))
	if r.Notes != "" {
		p.Printf("Заметки:     %s\n", r.Notes)
	}
	if record.IsLocalID(r.ID) {
		p.Printf("Статус:      сохранена только локально\n")
	}

	photos := app.PhotosByIDs(r.PhotoIDs)
	if len(photos) > 0 {
		p.Printf("Фото:\n")
		for _, ph := range photos {
			p.Printf("  - %s (%s)\n", ph.OriginalName, ph.ID)
		}
	}
	return nil
}
