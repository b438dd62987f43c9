package app

import (
	"os"

	"entrypoint/internal/crond"
	"entrypoint/internal/privdrop"
	"entrypoint/internal/system"
	"entrypoint/internal/types"
	"entrypoint/pkg/logger"
)

// App runs the container bring-up sequence: announce the startup context,
// set up the auxiliary cron subsystem best-effort, then hand the process
// over to the target command. It runs once per container start and holds
// no state beyond that.
type App struct {
	config  *types.Config
	logger  logger.Logger
	cron    *crond.Manager
	dropper *privdrop.Dropper
}

func New(cfg *types.Config, logger logger.Logger) *App {
	return newApp(cfg, logger, system.New())
}

func newApp(cfg *types.Config, logger logger.Logger, sys system.System) *App {
	return &App{
		config:  cfg,
		logger:  logger,
		cron:    crond.NewManager(&cfg.Cron, sys, logger),
		dropper: privdrop.New(&cfg.Exec, sys, logger),
	}
}

// Run executes the bring-up sequence once. On success it does not return:
// the final step replaces this process with args. The cron steps are
// auxiliary and must never decide the outcome; the only error Run can
// surface is a failed process replacement.
func (a *App) Run(args []string) error {
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = "UTC"
	}
	a.logger.Info("starting container, timezone: %s", tz)

	a.cron.InstallCrontab()
	a.cron.StartDaemon()
	a.cron.PrepareRuntimeDir()

	return a.dropper.Exec(args)
}
