package main

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/lifxd/internal/config"
	"github.com/wheelibin/lifxd/internal/events"
	"github.com/wheelibin/lifxd/internal/tui"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	// the terminal belongs to the ui so log to a file
	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: "logs/lifx.log",
		MaxAge:   3,
	}, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("lifx starting")

	cfg, err := config.InitialiseConfig()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	eventChannel := make(chan *sse.Event)
	consumer := events.NewConsumer(logger)
	if err := consumer.Subscribe(cfg.DaemonURL+"/events", eventChannel); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	defer consumer.Unsubscribe()

	client := tui.NewDaemonClient(cfg.DaemonURL, &http.Client{Timeout: 10 * time.Second})
	if err := tui.Run(logger, client, eventChannel); err != nil {
		logger.Error(err)
	}

	logger.Info("lifx is closing")
}
