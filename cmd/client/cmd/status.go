package cmd

import (
	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/app/client"
)

type statusOutput struct {
	Server     string   `json:"server"`
	Online     bool     `json:"online"`
	RidesMode  string   `json:"ridesMode"`
	PhotosMode string   `json:"photosMode"`
	Rides      int      `json:"rides"`
	Photos     int      `json:"photos"`
	Advisories []string `json:"advisories,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние подключения и кэша",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := output.FromCommand(cmd)
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		online := app.CheckConnection(cmd.Context()) == nil
		st := app.Load(cmd.Context())

		out := statusOutput{
			Server:     cfg.BaseURL(),
			Online:     online,
			RidesMode:  st.Rides.Mode.String(),
			PhotosMode: st.Photos.Mode.String(),
			Rides:      len(st.Rides.Records),
			Photos:     len(st.Photos.Records),
			Advisories: st.Advisories(),
		}
		if p.JSONMode() {
			return p.JSON(out)
		}

		if online {
			p.Success("Сервер %s доступен", out.Server)
		} else {
			p.Advisory(st)
		}
		p.Printf("Поездки:     %d (%s)\n", out.Rides, out.RidesMode)
		p.Printf("Фотографии:  %d (%s)\n", out.Photos, out.PhotosMode)
		return nil
	},
}
