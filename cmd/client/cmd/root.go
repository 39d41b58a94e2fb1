// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"ridejournal/cmd/client/cmd/output"
	"ridejournal/internal/app/client"
	"ridejournal/internal/app/client/config"
	"ridejournal/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "ridejournal",
	Short: "RideJournal - журнал велопоездок",
	Long: `RideJournal хранит поездки и фотографии на сервере и продолжает
работать без него: при недоступности сервера данные читаются из локального
кэша, а новые записи сохраняются локально.

Поездки рядом друг с другом (ближе ~100 м) объединяются в одну точку на карте.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.New(os.Stdout, os.Stderr, jsonOutput).Error(err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = config.EnvLocal
	}

	// Логи в stderr, чтобы не мешать выводу команд
	log = logger.NewTo(cfg.Env, os.Stderr)

	// Создаем приложение
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml, json, toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера RideJournal")

	// Команды будут добавлены в init() соответствующих файлов
}
