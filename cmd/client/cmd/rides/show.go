package rides

import (
	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
)

var ShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Просмотреть поездку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		r, err := findRide(app, args[0])
		if err != nil {
			return err
		}
		return printRide(p, app, r)
	},
}
