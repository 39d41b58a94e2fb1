package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Найти место по названию",
	Long: `Поиск места через геокодер (Nominatim). Найденные координаты можно
передать в ride add --lat/--lng или сразу использовать ride add --place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		places, err := app.Geocoder().Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		if p.JSONMode() {
			return p.JSON(places)
		}
		for i, pl := range places {
			p.Printf("%d. %s\n", i+1, pl.Name)
			p.Printf("   %.5f, %.5f (%s)\n", pl.Lat, pl.Lng, pl.Type)
		}
		return nil
	},
}
