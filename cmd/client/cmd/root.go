package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"contenthub/cmd/client/cmd/activity"
	"contenthub/cmd/client/cmd/auth"
	"contenthub/cmd/client/cmd/content"
	"contenthub/cmd/client/cmd/profile"
	"contenthub/cmd/client/cmd/tools"
	"contenthub/cmd/client/cmd/types"
	"contenthub/internal/app/client"
	"contenthub/internal/app/client/config"
	"contenthub/internal/utils/logger"
)

var (
	cfgFile    string
	serverAddr string
	debug      bool
	jsonOutput bool

	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "contenthub",
	Short: "Content Hub - клиент каталога инструментов и библиотеки контента",
	Long: `Content Hub показывает каталог инструментов генерации контента,
ведет ленту действий с учетом кредитов и хранит библиотеку созданных материалов.

Сессия сохраняется локально и восстанавливается при следующем запуске.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if serverAddr != "" {
		cfg.ServerAddress = serverAddr
	}

	log := newLogger(cfg)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Восстановленная сессия сразу загружает ленту и библиотеку.
	if err := app.Identity.Resolve(cmd.Context()); err != nil {
		log.Warn("session not restored", "error", err)
	}

	cmd.SetContext(types.WithRuntime(cmd.Context(), &types.Runtime{
		App:  app,
		JSON: jsonOutput,
		Out:  cmd.OutOrStdout(),
	}))
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	if debug {
		return logger.NewWriter(cfg.Env, os.Stderr)
	}
	return slog.New(logger.NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML-файл конфигурации")
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "адрес сервера host:port")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "подробные логи в stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")

	rootCmd.AddCommand(auth.Commands()...)
	rootCmd.AddCommand(
		tools.ToolsCmd,
		activity.ActivityCmd,
		content.ContentCmd,
		profile.ProfileCmd,
	)
}
