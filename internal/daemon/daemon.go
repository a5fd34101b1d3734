package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lifxd/internal/models"
)

const shutdownTimeout = 5 * time.Second

type Driver interface {
	Info() models.DriverInfo
	Discover(ctx context.Context) ([]models.DeviceDescriptor, error)
	Close()
}

type EventPublisher interface {
	Close()
}

// Daemon serves the driver over HTTP until its context is cancelled
type Daemon struct {
	logger    *log.Logger
	driver    Driver
	publisher EventPublisher
	server    *http.Server
}

func NewDaemon(
	logger *log.Logger,
	listenAddr string,
	handler http.Handler,
	driver Driver,
	publisher EventPublisher,
) *Daemon {
	return &Daemon{
		logger:    logger,
		driver:    driver,
		publisher: publisher,
		server: &http.Server{
			Addr:              listenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Initialise checks the stored token by listing the account's bulbs, an
// unauthenticated daemon still starts so the platform can run the auth flow
func (d *Daemon) Initialise(ctx context.Context) {
	d.logger.Debug("Daemon.Initialise")

	info := d.driver.Info()
	d.logger.Info("Driver loaded", "name", info.Name, "type", info.Type, "interface", info.Interface)

	devices, err := d.driver.Discover(ctx)
	if err != nil {
		d.logger.Warn("Unable to discover bulbs, authentication required", "err", err)
		return
	}
	for _, device := range devices {
		d.logger.Info("Found bulb", "id", device.OriginalID, "name", device.Name)
	}
}

// Run blocks until ctx is cancelled or the listener fails
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Debug("Daemon.Run")

	listener, err := net.Listen("tcp", d.server.Addr)
	if err != nil {
		return fmt.Errorf("Error listening on %s: %w", d.server.Addr, err)
	}
	return d.Serve(ctx, listener)
}

func (d *Daemon) Serve(ctx context.Context, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		d.logger.Info("Listening", "addr", listener.Addr().String())
		serveErr <- d.server.Serve(listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		d.logger.Info("Daemon.Run: stop signal received")
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}

	d.shutdown()
	return err
}

func (d *Daemon) shutdown() {
	// pending reconciliations are dropped before the event stream goes away
	d.driver.Close()
	d.publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := d.server.Shutdown(ctx); err != nil {
		d.logger.Error("Error shutting down http server", "err", err)
	}
}
