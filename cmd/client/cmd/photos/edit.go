package photos

import (
	"fmt"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/domain/photo"
	"ridejournal/internal/domain/record"
)

var (
	editDescription string
	editTags        string
	editDateTaken   string
)

var EditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Изменить описание, теги или дату съемки",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		current, ok := app.Photos().GetByID(args[0])
		if !ok {
			return fmt.Errorf("фотография %s: %w", args[0], record.ErrNotFound)
		}

		next := current
		if cmd.Flags().Changed("description") {
			next.Description = editDescription
		}
		if cmd.Flags().Changed("tags") {
			next.Tags = photo.SplitTags(editTags)
		}
		if cmd.Flags().Changed("date-taken") {
			taken, err := parseDateTaken(editDateTaken)
			if err != nil {
				return err
			}
			next.DateTaken = taken
		}

		updated, err := app.Photos().Update(cmd.Context(), current.ID, next)
		if err != nil {
			return fmt.Errorf("ошибка обновления фотографии: %w", err)
		}

		reportSaved(p, app)
		if p.JSONMode() {
			return p.JSON(updated)
		}
		p.Success("Фотография %s обновлена", updated.ID)
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVar(&editDescription, "description", "", "описание")
	EditCmd.Flags().StringVar(&editTags, "tags", "", "теги через запятую")
	EditCmd.Flags().StringVar(&editDateTaken, "date-taken", "", "дата съемки (YYYY-MM-DD)")
}
