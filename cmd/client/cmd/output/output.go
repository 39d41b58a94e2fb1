// Package output - общий вывод команд клиента: баннеры, таблицы и JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ridejournal/internal/app/client"
)

type Printer struct {
	out  io.Writer
	err  io.Writer
	json bool

	warn    *color.Color
	fail    *color.Color
	success *color.Color
	accent  *color.Color
}

// New создает Printer. Цвета включаются, только если stdout - терминал.
func New(out, errOut io.Writer, jsonOutput bool) *Printer {
	p := &Printer{
		out:     out,
		err:     errOut,
		json:    jsonOutput,
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen),
		accent:  color.New(color.FgCyan),
	}
	if !isTerminal(out) {
		for _, c := range []*color.Color{p.warn, p.fail, p.success, p.accent} {
			c.DisableColor()
		}
	}
	return p
}

// FromCommand создает Printer по флагу --json команды
func FromCommand(cmd *cobra.Command) *Printer {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return New(cmd.OutOrStdout(), cmd.ErrOrStderr(), jsonOutput)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// JSONMode сообщает, запрошен ли машиночитаемый вывод
func (p *Printer) JSONMode() bool {
	return p.json
}

func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Advisory печатает предупреждение о работе без сервера в stderr
func (p *Printer) Advisory(status client.Status) {
	for _, a := range status.Advisories() {
		p.Warn(a)
	}
}

// Warn печатает предупреждение, если оно не пустое
func (p *Printer) Warn(msg string) {
	if msg == "" {
		return
	}
	p.warn.Fprintf(p.err, "⚠️  %s\n", msg)
}

func (p *Printer) Error(err error) {
	p.fail.Fprintf(p.err, "Ошибка: %v\n", err)
}

func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, "✓ "+format+"\n", args...)
}

func (p *Printer) Title(format string, args ...any) {
	p.accent.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Table печатает строки с выравниванием колонок
func (p *Printer) Table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	writeRow(w, header)
	for _, row := range rows {
		writeRow(w, row)
	}
	return w.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprintf(w, "%s\t", c)
	}
	fmt.Fprintln(w)
}

// Prepare достает приложение из контекста команды и загружает данные.
// При работе без сервера печатает предупреждение.
func Prepare(cmd *cobra.Command) (*client.App, *Printer, error) {
	p := FromCommand(cmd)

	app, err := client.FromContext(cmd.Context())
	if err != nil {
		return nil, p, err
	}

	status := app.Load(cmd.Context())
	p.Advisory(status)
	return app, p, nil
}

// Truncate обрезает строку до length символов
func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
