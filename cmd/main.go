package main

import (
	"context"
	"log/slog"
	"os"

	"login-clean-starter/cmd/bootstrap"
	"login-clean-starter/internal/scenario"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func runScenarios(lc fx.Lifecycle, runner *scenario.Runner, shutdowner fx.Shutdowner, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			report := runner.Run(ctx)

			exitCode := 0
			if err := report.Err(); err != nil {
				logger.Error("シナリオが失敗しました", "run_id", report.RunID, "error", err)
				exitCode = 1
			}
			return shutdowner.Shutdown(fx.ExitCode(exitCode))
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
		fx.Invoke(
			runScenarios,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	signal := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	os.Exit(signal.ExitCode)
}
