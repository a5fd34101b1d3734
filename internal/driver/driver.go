package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/lifxd/internal/concurrency"
	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/lifx"
	"github.com/wheelibin/lifxd/internal/models"
)

type lightClient interface {
	Init(token string)
	ListLights(ctx context.Context, selector string) ([]lifx.Light, error)
	SetState(ctx context.Context, selector string, params lifx.StateParams) (*lifx.Results, error)
	Toggle(ctx context.Context, selector string, params lifx.ToggleParams) (*lifx.Results, error)
	Breathe(ctx context.Context, selector string, params lifx.EffectParams) (*lifx.Results, error)
	Pulse(ctx context.Context, selector string, params lifx.EffectParams) (*lifx.Results, error)
}

type settingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	Set(ctx context.Context, settings models.Settings) error
}

type eventEmitter interface {
	CreateEvent(eventType string, deviceID string, payload any)
}

type taskScheduler interface {
	Schedule(key string, delay time.Duration, task func(ctx context.Context)) bool
	Cancel(key string) int
	Stop()
}

type Driver struct {
	logger           *log.Logger
	settings         settingsStore
	client           lightClient
	emitter          eventEmitter
	scheduler        taskScheduler
	throttleInterval time.Duration

	// the token last handed to the client
	mu          sync.Mutex
	token       string
	initialised bool
}

// New reads the stored settings and initialises the client with the stored token
func New(
	ctx context.Context,
	logger *log.Logger,
	settings settingsStore,
	client lightClient,
	emitter eventEmitter,
	scheduler taskScheduler,
	throttleInterval time.Duration,
) (*Driver, error) {

	d := &Driver{
		logger:           logger,
		settings:         settings,
		client:           client,
		emitter:          emitter,
		scheduler:        scheduler,
		throttleInterval: throttleInterval,
	}

	if err := d.refreshToken(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Name() string      { return constants.DriverName }
func (d *Driver) Type() string      { return constants.DriverType }
func (d *Driver) Interface() string { return constants.DriverInterface }

func (d *Driver) Info() models.DriverInfo {
	return models.DriverInfo{Name: d.Name(), Type: d.Type(), Interface: d.Interface()}
}

// refreshToken re-reads the settings store so a token saved elsewhere is
// picked up before the next call to LIFX
func (d *Driver) refreshToken(ctx context.Context) error {
	settings, err := d.settings.Get(ctx)
	if err != nil {
		return &Error{Kind: KindDevice, Message: "unable to read driver settings", Err: err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialised || settings.Token != d.token {
		d.client.Init(settings.Token)
		d.token = settings.Token
		d.initialised = true
	}
	return nil
}

func (d *Driver) Discover(ctx context.Context) ([]models.DeviceDescriptor, error) {
	if err := d.refreshToken(ctx); err != nil {
		return nil, err
	}
	return d.discover(ctx)
}

func (d *Driver) discover(ctx context.Context) ([]models.DeviceDescriptor, error) {
	lights, err := d.client.ListLights(ctx, constants.SelectorAll)
	if err != nil {
		// any failure to list lights is reported as an authentication problem
		return nil, &Error{Kind: KindAuthentication, Message: rawMessage(err), Err: err}
	}

	d.logger.Info("Discovered lights", "total", len(lights))

	return lo.Map(lights, func(light lifx.Light, _ int) models.DeviceDescriptor {
		return models.DeviceDescriptor{
			OriginalID: light.ID,
			Name:       light.Label,
			Commands:   lo.Associate(commandNames, func(name string) (string, bool) { return name, true }),
			Events:     lo.Associate(eventNames, func(name string) (string, bool) { return name, true }),
		}
	}), nil
}

// InitDevices reads the current state of each known device and emits it,
// throttled to stay inside the LIFX rate limit
func (d *Driver) InitDevices(ctx context.Context, devices []models.Device) error {
	if err := d.refreshToken(ctx); err != nil {
		return err
	}

	byID := lo.KeyBy(devices, func(device models.Device) string { return device.ID })

	tw := concurrency.NewThrottledWorker(d.throttleInterval, func(ctx context.Context, id string) error {
		device := byID[id]
		snapshot, err := d.fetchSnapshot(ctx, device)
		if err != nil {
			err = ClassifyError(err)
			d.logger.Warn("Unable to read initial light state", "device", id, "err", err)
			return fmt.Errorf("device %s: %w", id, err)
		}
		d.emitter.CreateEvent(constants.EventLightState, device.ID, *snapshot)
		return nil
	})

	return tw.Run(ctx, lo.Keys(byID))
}

// RemoveDevice cancels any reconciliation still pending for the device
func (d *Driver) RemoveDevice(device models.Device) int {
	return d.scheduler.Cancel(taskKey(device))
}

func (d *Driver) Close() {
	d.scheduler.Stop()
}

func (d *Driver) fetchSnapshot(ctx context.Context, device models.Device) (*models.Snapshot, error) {
	lights, err := d.client.ListLights(ctx, selectorFor(device))
	if err != nil {
		return nil, err
	}
	if len(lights) == 0 {
		return nil, &Error{Kind: KindDriver, Message: fmt.Sprintf("no state returned for bulb %s", device.Specs.OriginalID)}
	}
	snapshot := snapshotFromLight(lights[0])
	return &snapshot, nil
}

func (d *Driver) scheduleReconciliation(device models.Device, delay time.Duration) {
	d.scheduler.Schedule(taskKey(device), delay, func(ctx context.Context) {
		snapshot, err := d.fetchSnapshot(ctx, device)
		if err != nil {
			d.logger.Error("Unable to reconcile light state", "device", device.ID, "err", ClassifyError(err))
			return
		}
		d.logger.Debug("Reconciled light state", "device", device.ID, "state", *snapshot)
		d.emitter.CreateEvent(constants.EventLightState, device.ID, *snapshot)
	})
}

func selectorFor(device models.Device) string {
	return "id:" + device.Specs.OriginalID
}

func taskKey(device models.Device) string {
	if device.ID != "" {
		return device.ID
	}
	return device.Specs.OriginalID
}

func snapshotFromLight(light lifx.Light) models.Snapshot {
	return models.Snapshot{
		On: light.Power == constants.PowerOn,
		Colour: models.Colour{
			Hue:        int(light.Color.Hue),
			Saturation: light.Color.Saturation,
			Brightness: light.Brightness,
		},
	}
}
