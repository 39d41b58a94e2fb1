package photos

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/domain/photo"
)

var listYear int

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список фотографий",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		items := app.Photos().Records()
		if listYear > 0 {
			items = photo.FilterByYear(items, listYear)
		}

		if p.JSONMode() {
			return p.JSON(items)
		}

		if len(items) == 0 {
			p.Printf("Фотографии не найдены\n")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, ph := range items {
			rows = append(rows, []string{
				ph.ID,
				ph.DateTaken.Format("2006-01-02"),
				output.Truncate(ph.OriginalName, 30),
				strconv.FormatInt(ph.Size, 10),
				strings.Join(ph.Tags, ", "),
			})
		}
		if err := p.Table([]string{"ID", "Снято", "Файл", "Размер", "Теги"}, rows); err != nil {
			return err
		}
		p.Printf("\nВсего фотографий: %d\n", len(items))
		return nil
	},
}

var YearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Годы, за которые есть фотографии",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		years := photo.Years(app.Photos().Records())
		if p.JSONMode() {
			return p.JSON(years)
		}
		for _, y := range years {
			p.Printf("%d\n", y)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVar(&listYear, "year", 0, "только фотографии, снятые в указанном году")
}
