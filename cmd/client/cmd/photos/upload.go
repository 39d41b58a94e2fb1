package photos

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/domain/photo"
)

var (
	uploadDescription string
	uploadTags        string
	uploadDateTaken   string
)

var UploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Загрузить фотографию",
	Long: `Загрузка изображения на сервер.

Без сервера фотография сохраняется в локальном кэше вместе с содержимым
файла. Ссылки на файл у такой фотографии нет: ее выдает только сервер.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, p, err := output.Prepare(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("ошибка чтения файла: %w", err)
		}

		draft := photo.Draft{
			OriginalName: filepath.Base(args[0]),
			MimeType:     detectMimeType(args[0], data),
			Data:         data,
			Description:  uploadDescription,
			Tags:         photo.SplitTags(uploadTags),
		}
		if uploadDateTaken != "" {
			taken, err := parseDateTaken(uploadDateTaken)
			if err != nil {
				return err
			}
			draft.DateTaken = &taken
		}

		created, err := app.Photos().Create(cmd.Context(), draft)
		if err != nil {
			return fmt.Errorf("ошибка загрузки фотографии: %w", err)
		}

		reportSaved(p, app)
		if p.JSONMode() {
			return p.JSON(created)
		}
		p.Success("Фотография загружена, ID: %s", created.ID)
		if created.URL != "" {
			p.Printf("URL: %s\n", created.URL)
		}
		return nil
	},
}

func init() {
	UploadCmd.Flags().StringVar(&uploadDescription, "description", "", "описание")
	UploadCmd.Flags().StringVar(&uploadTags, "tags", "", "теги через запятую")
	UploadCmd.Flags().StringVar(&uploadDateTaken, "date-taken", "", "дата съемки (YYYY-MM-DD), по умолчанию сейчас")
}
