package rides

import (
	"fmt"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/domain/ride"
)

var addFlags rideFlags

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить поездку",
	Long: `Добавление новой поездки.

Обязательны название, дата и координаты старта. Координаты задаются
флагами --lat и --lng или находятся по названию места через --place.
Если сервер недоступен, поездка сохраняется локально.

Пример:
  ridejournal ride add --name "Alps Loop" --date 2024-05-01 --lat 47.0 --lng 8.5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		loc, err := addFlags.location(cmd.Context(), app, cmd.Flags())
		if err != nil {
			return err
		}

		draft := ride.Draft{
			Name:     addFlags.name,
			Date:     addFlags.date,
			Location: loc,
			Notes:    addFlags.notes,
			PhotoIDs: addFlags.photos,
		}
		if cmd.Flags().Changed("distance") {
			draft.Distance = &addFlags.distance
		}
		if cmd.Flags().Changed("elevation") {
			draft.Elevation = &addFlags.elevation
		}

		created, err := app.Rides().Create(cmd.Context(), draft)
		if err != nil {
			return fmt.Errorf("ошибка создания поездки: %w", err)
		}

		reportSaved(p, app)
		if p.JSONMode() {
			return p.JSON(created)
		}
		p.Success("Поездка создана, ID: %s", created.ID)
		return nil
	},
}

func init() {
	addFlags.register(AddCmd)
}
