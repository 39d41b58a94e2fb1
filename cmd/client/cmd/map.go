package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/domain/geo"
	"ridejournal/internal/domain/ride"
)

type mapOutput struct {
	View     geo.View                 `json:"view"`
	Clusters []geo.Cluster[ride.Ride] `json:"clusters"`
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Поездки на карте",
	Long: `Группирует поездки по месту старта: поездки ближе ~100 м друг
к другу становятся одной точкой. Показывает центр и масштаб карты.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		out := mapOutput{
			View:     app.MapView(),
			Clusters: app.Clusters(),
		}
		if p.JSONMode() {
			return p.JSON(out)
		}

		p.Title("Центр карты: %.5f, %.5f (масштаб %d)", out.View.Center.Lat, out.View.Center.Lng, out.View.Zoom)
		if len(out.Clusters) == 0 {
			p.Printf("Поездок пока нет\n")
			return nil
		}

		for i, c := range out.Clusters {
			names := make([]string, 0, c.Size())
			for _, r := range c.Members {
				names = append(names, r.Name)
			}
			p.Printf("%d. %.5f, %.5f - поездок: %d\n", i+1, c.Centroid.Lat, c.Centroid.Lng, c.Size())
			p.Printf("   %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}
