package main

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wheelibin/lifxd/internal/concurrency"
	"github.com/wheelibin/lifxd/internal/config"
	"github.com/wheelibin/lifxd/internal/daemon"
	"github.com/wheelibin/lifxd/internal/driver"
	"github.com/wheelibin/lifxd/internal/events"
	"github.com/wheelibin/lifxd/internal/lifx"
	"github.com/wheelibin/lifxd/internal/repos"
	"github.com/wheelibin/lifxd/internal/server"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	// read the config file
	cfg, err := config.InitialiseConfig()
	if err != nil {
		log.Fatal(err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
	logger.Info("lifxd starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	// create/wire up services
	settingsRepo, err := repos.NewSettingsRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	client := lifx.NewClient(logger, cfg.APIURL, &http.Client{Timeout: cfg.RequestTimeout})
	scheduler := concurrency.NewScheduler(logger)
	publisher := events.NewPublisher(logger)

	drv, err := driver.New(ctx, logger, settingsRepo, client, publisher, scheduler, cfg.ThrottleInterval)
	if err != nil {
		logger.Fatal(err)
	}

	srv := server.NewServer(logger, drv, publisher)
	d := daemon.NewDaemon(logger, cfg.ListenAddr, srv.Handler(), drv, publisher)

	d.Initialise(ctx)
	if err := d.Run(ctx); err != nil {
		logger.Error(err)
	}

	logger.Info("lifxd is closing")
}
