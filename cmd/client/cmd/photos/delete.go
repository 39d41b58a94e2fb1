package photos

import (
	"fmt"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить фотографию",
	Long: `Удаление фотографии по ID. Поездки, которые на нее ссылаются,
не меняются: ссылка просто перестанет показываться.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		if err := app.Photos().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления фотографии: %w", err)
		}

		reportSaved(p, app)
		p.Success("Фотография %s удалена", args[0])
		return nil
	},
}
