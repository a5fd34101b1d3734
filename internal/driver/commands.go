package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/lifx"
	"github.com/wheelibin/lifxd/internal/models"
)

type command struct {
	requiresColour bool
	call           func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error)

	// state changing commands: how long to wait before reading the state back
	reconcileDelay func(props models.CommandProps) time.Duration

	// effect commands: the confirmation emitted on success
	effectEvent   string
	effectPayload models.EffectConfirmation
}

var commands = map[string]command{
	constants.CommandSetHSBState: {
		requiresColour: true,
		call: func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error) {
			return client.SetState(ctx, selector, lifx.StateParams{
				Power:    constants.PowerOn,
				Color:    colourString(*props.Colour),
				Duration: props.Duration,
			})
		},
		reconcileDelay: afterTransition,
	},
	constants.CommandSetBrightnessState: {
		requiresColour: true,
		call: func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error) {
			brightness := props.Colour.Brightness
			return client.SetState(ctx, selector, lifx.StateParams{
				Power:      constants.PowerOn,
				Brightness: &brightness,
				Duration:   props.Duration,
			})
		},
		reconcileDelay: afterTransition,
	},
	constants.CommandSetBooleanState: {
		call: func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error) {
			power := constants.PowerOn
			if props.On != nil && !*props.On {
				power = constants.PowerOff
			}
			return client.SetState(ctx, selector, lifx.StateParams{
				Power:    power,
				Duration: props.Duration,
			})
		},
		reconcileDelay: afterTransition,
	},
	constants.CommandToggle: {
		call: func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error) {
			return client.Toggle(ctx, selector, lifx.ToggleParams{Duration: props.Duration})
		},
		reconcileDelay: func(models.CommandProps) time.Duration { return constants.ToggleReconcileDelay },
	},
	constants.CommandBreatheEffect: {
		requiresColour: true,
		call: func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error) {
			params := effectParams(props)
			peak := props.Peak
			params.Peak = &peak
			return client.Breathe(ctx, selector, params)
		},
		effectEvent:   constants.EventBreatheLightEffect,
		effectPayload: models.EffectConfirmation{BreatheEffect: true},
	},
	constants.CommandPulseEffect: {
		requiresColour: true,
		call: func(ctx context.Context, client lightClient, selector string, props models.CommandProps) (*lifx.Results, error) {
			return client.Pulse(ctx, selector, effectParams(props))
		},
		effectEvent:   constants.EventPulseLightEffect,
		effectPayload: models.EffectConfirmation{PulseEffect: true},
	},
}

// advertised for every discovered bulb
var commandNames = []string{
	constants.CommandSetHSBState,
	constants.CommandSetBrightnessState,
	constants.CommandToggle,
	constants.CommandSetBooleanState,
	constants.CommandBreatheEffect,
	constants.CommandPulseEffect,
}

var eventNames = []string{
	constants.EventLightState,
	constants.EventPulseLightEffect,
	constants.EventBreatheLightEffect,
}

// BuildColourString encodes a colour the way the LIFX API expects it
func BuildColourString(hue int, saturation float64, brightness float64) string {
	return fmt.Sprintf("hue:%d saturation:%v brightness:%v", hue, saturation, brightness)
}

func colourString(c models.Colour) string {
	return BuildColourString(c.Hue, c.Saturation, c.Brightness)
}

func effectParams(props models.CommandProps) lifx.EffectParams {
	params := lifx.EffectParams{
		Color:   colourString(*props.Colour),
		Period:  props.Period,
		Cycles:  props.Cycles,
		Persist: props.Persist,
		PowerOn: true,
	}
	if props.FromColour != nil {
		params.FromColor = colourString(*props.FromColour)
	}
	return params
}

// the transition time plus a margin for the bulb to settle
func afterTransition(props models.CommandProps) time.Duration {
	return time.Duration(props.Duration*float64(time.Second)) + constants.TransitionSettleMargin
}

// ExecuteCommand runs the named command against the device. State changing
// commands return the state read back straight after the call and schedule
// a second read once the transition should be complete. Effect commands
// return a nil snapshot.
func (d *Driver) ExecuteCommand(ctx context.Context, name string, device models.Device, props models.CommandProps) (*models.Snapshot, error) {
	cmd, ok := commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if err := d.refreshToken(ctx); err != nil {
		return nil, err
	}

	d.logger.Debug("Executing command", "command", name, "device", device.ID, "bulb", device.Specs.OriginalID)

	snapshot, err := d.execute(ctx, cmd, device, props)
	if err != nil {
		err = ClassifyError(err)
		if e, ok := err.(*Error); ok && e.Unmatched {
			d.logger.Warn("Unrecognised LIFX error", "command", name, "device", device.ID, "err", e.Err)
		} else {
			d.logger.Error("Command failed", "command", name, "device", device.ID, "err", err)
		}
		return nil, err
	}

	return snapshot, nil
}

func (d *Driver) execute(ctx context.Context, cmd command, device models.Device, props models.CommandProps) (*models.Snapshot, error) {
	if cmd.requiresColour && props.Colour == nil {
		return nil, NewBadRequestError("colour is required", nil)
	}

	results, err := cmd.call(ctx, d.client, selectorFor(device), props)
	if err != nil {
		return nil, err
	}
	if err := d.checkResults(device, results); err != nil {
		return nil, err
	}

	if cmd.effectEvent != "" {
		d.emitter.CreateEvent(cmd.effectEvent, device.ID, cmd.effectPayload)
		return nil, nil
	}

	snapshot, err := d.fetchSnapshot(ctx, device)
	if err != nil {
		return nil, err
	}

	d.scheduleReconciliation(device, cmd.reconcileDelay(props))

	return snapshot, nil
}

// checkResults looks at the first result only, calls are always made for a single bulb
func (d *Driver) checkResults(device models.Device, results *lifx.Results) error {
	if results == nil || len(results.Results) == 0 {
		return NewDriverError(results)
	}

	result := results.Results[0]
	if result.ID != "" && result.ID != device.Specs.OriginalID {
		d.logger.Warn("Result is for a different bulb", "expected", device.Specs.OriginalID, "got", result.ID)
	}

	switch result.Status {
	case constants.ResultStatusOK:
		return nil
	case constants.ResultStatusOffline:
		return NewConnectionError()
	default:
		return NewDriverError(results)
	}
}
