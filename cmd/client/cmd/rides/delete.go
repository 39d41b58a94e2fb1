package rides

import (
	"fmt"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить поездку",
	Long: `Удаление поездки по ID. Ссылки на фотографии удаляются вместе
с поездкой, сами фотографии остаются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		if err := app.Rides().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления поездки: %w", err)
		}

		reportSaved(p, app)
		p.Success("Поездка %s удалена", args[0])
		return nil
	},
}
