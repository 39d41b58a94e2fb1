package rides

import (
	"strconv"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/domain/ride"
)

var listYear int

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список поездок",
	Long: `Просмотр списка поездок в порядке добавления.

Флаг --year оставляет только поездки указанного года.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		items := app.Rides().Records()
		if listYear > 0 {
			items = ride.FilterByYear(items, listYear)
		}

		if p.JSONMode() {
			return p.JSON(items)
		}

		if len(items) == 0 {
			p.Printf("Поездки не найдены\n")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, r := range items {
			rows = append(rows, []string{
				r.ID,
				r.Date.String(),
				output.Truncate(r.Name, 30),
				output.Truncate(r.Location.Name, 25),
				formatKm(r.Distance),
				formatMeters(r.Elevation),
				strconv.Itoa(len(r.PhotoIDs)),
			})
		}
		if err := p.Table([]string{"ID", "Дата", "Название", "Место", "Км", "Набор, м", "Фото"}, rows); err != nil {
			return err
		}
		p.Printf("\nВсего поездок: %d\n", len(items))
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVar(&listYear, "year", 0, "только поездки указанного года")
}
