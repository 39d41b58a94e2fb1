package photos

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/app/client"
	"ridejournal/internal/domain/record"
)

// PhotoCmd - родительская команда для всех операций с фотографиями
var PhotoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Управление фотографиями",
	Long:  `Загрузка, просмотр, изменение и удаление фотографий поездок.`,
}

func init() {
	PhotoCmd.AddCommand(ListCmd, YearsCmd, UploadCmd, EditCmd, DeleteCmd)
}

// detectMimeType определяет тип по расширению, а если оно неизвестно - по содержимому
func detectMimeType(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = t[:i]
		}
		return t
	}
	return http.DetectContentType(data)
}

func parseDateTaken(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: dateTaken: ожидается YYYY-MM-DD или RFC3339", record.ErrValidation)
}

func reportSaved(p *output.Printer, app *client.App) {
	if app.Photos().Mode() == client.ModeLocal {
		p.Warn(app.Photos().Advisory())
	}
}
