package driver_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/driver"
	"github.com/wheelibin/lifxd/internal/lifx"
	"github.com/wheelibin/lifxd/internal/models"
	"github.com/wheelibin/lifxd/mocks"
)

const bulbID = "d073d5000001"

var device = models.Device{ID: "dev1", Specs: models.DeviceSpecs{OriginalID: bulbID}}

type fixture struct {
	client    *mocks.MockDriverLightClient
	settings  *mocks.MockDriverSettingsStore
	emitter   *mocks.MockDriverEventEmitter
	scheduler *mocks.MockDriverTaskScheduler
	driver    *driver.Driver
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		client:    mocks.NewMockDriverLightClient(t),
		settings:  mocks.NewMockDriverSettingsStore(t),
		emitter:   mocks.NewMockDriverEventEmitter(t),
		scheduler: mocks.NewMockDriverTaskScheduler(t),
	}

	f.settings.On("Get", mock.Anything).Return(models.Settings{Token: "token123"}, nil)
	f.client.On("Init", "token123").Return().Once()

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	d, err := driver.New(context.Background(), logger, f.settings, f.client, f.emitter, f.scheduler, time.Millisecond)
	require.NoError(t, err)
	f.driver = d

	return f
}

func light(power string, hue float64, saturation float64, brightness float64) []lifx.Light {
	return []lifx.Light{{
		ID:         bulbID,
		Label:      "Office Lamp",
		Power:      power,
		Color:      lifx.LightColor{Hue: hue, Saturation: saturation, Kelvin: 3500},
		Brightness: brightness,
	}}
}

func results(status string) *lifx.Results {
	return &lifx.Results{Results: []lifx.Result{{ID: bulbID, Label: "Office Lamp", Status: status}}}
}

var colourProps = models.CommandProps{
	Duration: 1,
	Colour:   &models.Colour{Hue: 10, Saturation: 0.5, Brightness: 0.5},
}

// the client method each command calls
var commandMethods = map[string]string{
	constants.CommandSetHSBState:        "SetState",
	constants.CommandSetBrightnessState: "SetState",
	constants.CommandSetBooleanState:    "SetState",
	constants.CommandToggle:             "Toggle",
	constants.CommandBreatheEffect:      "Breathe",
	constants.CommandPulseEffect:        "Pulse",
}

func Test_BuildColourString(t *testing.T) {
	assert.Equal(t, "hue:180 saturation:0.5 brightness:0.75", driver.BuildColourString(180, 0.5, 0.75))
	assert.Equal(t, "hue:0 saturation:1 brightness:1", driver.BuildColourString(0, 1, 1))
}

func Test_ClassifyError(t *testing.T) {

	tests := []struct {
		name      string
		err       error
		kind      driver.Kind
		message   string
		unmatched bool
	}{
		{"invalid token", &lifx.APIError{StatusCode: 401, Message: "Invalid token"}, driver.KindAuthentication, "Not authenticated", false},
		{"token required", errors.New("Token required"), driver.KindAuthentication, "Not authenticated", false},
		{"unparsable colour", &lifx.APIError{StatusCode: 422, Message: "Unable to parse color: hue:abc"}, driver.KindBadRequest, "Unable to parse colour", false},
		{"anything else", errors.New("something broke"), driver.KindDevice, "something broke", true},
		{"already a connection error", driver.NewConnectionError(), driver.KindConnection, "Unable to connect to bulb", false},
		{"already a driver error", driver.NewDriverError(results("timed_out")), driver.KindDriver, `unexpected status "timed_out" for bulb d073d5000001`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// act
			err := driver.ClassifyError(tt.err)

			// assert
			var driverErr *driver.Error
			require.ErrorAs(t, err, &driverErr)
			assert.Equal(t, tt.kind, driverErr.Kind)
			assert.Equal(t, tt.message, driverErr.Error())
			assert.Equal(t, tt.unmatched, driverErr.Unmatched)
		})
	}

	t.Run("should keep the original error in the chain", func(t *testing.T) {
		apiErr := &lifx.APIError{StatusCode: 401, Message: "Invalid token"}
		err := driver.ClassifyError(apiErr)
		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("already classified errors pass through unchanged", func(t *testing.T) {
		connErr := driver.NewConnectionError()
		assert.Same(t, connErr, driver.ClassifyError(connErr))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, driver.ClassifyError(nil))
	})
}

func Test_ExecuteCommand_ResultStatus(t *testing.T) {

	for name, method := range commandMethods {
		name, method := name, method

		t.Run(name+": offline should fail with a connection error", func(t *testing.T) {
			t.Parallel()

			// arrange
			f := newFixture(t)
			f.client.On(method, mock.Anything, "id:"+bulbID, mock.Anything).Return(results("offline"), nil)

			// act
			snapshot, err := f.driver.ExecuteCommand(context.Background(), name, device, colourProps)

			// assert
			assert.Nil(t, snapshot)
			assert.Equal(t, driver.KindConnection, driver.KindOf(err))
			assert.EqualError(t, err, "Unable to connect to bulb")
			f.client.AssertNotCalled(t, "ListLights", mock.Anything, mock.Anything)
			f.scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything, mock.Anything)
		})

		t.Run(name+": unexpected status should fail with a driver error", func(t *testing.T) {
			t.Parallel()

			// arrange
			f := newFixture(t)
			raw := results("timed_out")
			f.client.On(method, mock.Anything, "id:"+bulbID, mock.Anything).Return(raw, nil)

			// act
			_, err := f.driver.ExecuteCommand(context.Background(), name, device, colourProps)

			// assert
			var driverErr *driver.Error
			require.ErrorAs(t, err, &driverErr)
			assert.Equal(t, driver.KindDriver, driverErr.Kind)
			assert.Same(t, raw, driverErr.Results)
			f.emitter.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
		})

		t.Run(name+": empty results should fail with a driver error", func(t *testing.T) {
			t.Parallel()

			// arrange
			f := newFixture(t)
			f.client.On(method, mock.Anything, "id:"+bulbID, mock.Anything).Return(&lifx.Results{}, nil)

			// act
			_, err := f.driver.ExecuteCommand(context.Background(), name, device, colourProps)

			// assert
			assert.Equal(t, driver.KindDriver, driver.KindOf(err))
		})

		t.Run(name+": invalid token should fail with an authentication error", func(t *testing.T) {
			t.Parallel()

			// arrange
			f := newFixture(t)
			f.client.On(method, mock.Anything, "id:"+bulbID, mock.Anything).Return(nil, &lifx.APIError{StatusCode: 401, Message: "Invalid token"})

			// act
			_, err := f.driver.ExecuteCommand(context.Background(), name, device, colourProps)

			// assert
			assert.Equal(t, driver.KindAuthentication, driver.KindOf(err))
			assert.EqualError(t, err, "Not authenticated")
		})
	}
}

func Test_ExecuteCommand_Toggle(t *testing.T) {

	t.Run("should return the current state and reconcile after 3 seconds", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		var reconcile func(context.Context)

		f.client.On("Toggle", mock.Anything, "id:"+bulbID, lifx.ToggleParams{}).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("on", 120.7, 0.25, 0.5), nil).Once()
		f.scheduler.On("Schedule", "dev1", 3*time.Second, mock.Anything).
			Run(func(args mock.Arguments) { reconcile = args.Get(2).(func(context.Context)) }).
			Return(true).Once()

		// act
		snapshot, err := f.driver.ExecuteCommand(context.Background(), constants.CommandToggle, device, models.CommandProps{})

		// assert
		require.NoError(t, err)
		assert.Equal(t, &models.Snapshot{On: true, Colour: models.Colour{Hue: 120, Saturation: 0.25, Brightness: 0.5}}, snapshot)
		f.scheduler.AssertNumberOfCalls(t, "Schedule", 1)
		f.emitter.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)

		// the deferred read emits the settled state
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("off", 120, 0.25, 0.5), nil).Once()
		f.emitter.On("CreateEvent", constants.EventLightState, "dev1", models.Snapshot{On: false, Colour: models.Colour{Hue: 120, Saturation: 0.25, Brightness: 0.5}}).Return().Once()

		require.NotNil(t, reconcile)
		reconcile(context.Background())
	})

	t.Run("failed reconciliation: should not emit an event", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		var reconcile func(context.Context)

		f.client.On("Toggle", mock.Anything, "id:"+bulbID, mock.Anything).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("on", 0, 0, 1), nil).Once()
		f.scheduler.On("Schedule", "dev1", 3*time.Second, mock.Anything).
			Run(func(args mock.Arguments) { reconcile = args.Get(2).(func(context.Context)) }).
			Return(true).Once()
		_, err := f.driver.ExecuteCommand(context.Background(), constants.CommandToggle, device, models.CommandProps{})
		require.NoError(t, err)

		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(nil, errors.New("connection reset")).Once()

		// act
		reconcile(context.Background())

		// assert
		f.emitter.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("immediate read fails: should return the classified error and not schedule", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		f.client.On("Toggle", mock.Anything, "id:"+bulbID, mock.Anything).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(nil, &lifx.APIError{StatusCode: 401, Message: "Token required"}).Once()

		// act
		_, err := f.driver.ExecuteCommand(context.Background(), constants.CommandToggle, device, models.CommandProps{})

		// assert
		assert.Equal(t, driver.KindAuthentication, driver.KindOf(err))
		f.scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_ExecuteCommand_SetState(t *testing.T) {

	t.Run("setHSBState: should send the colour descriptor and reconcile after the transition", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		props := models.CommandProps{Duration: 2, Colour: &models.Colour{Hue: 0, Saturation: 1, Brightness: 1}}

		f.client.On("SetState", mock.Anything, "id:"+bulbID, lifx.StateParams{
			Power:    "on",
			Color:    "hue:0 saturation:1 brightness:1",
			Duration: 2,
		}).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("on", 0, 1, 1), nil).Once()
		f.scheduler.On("Schedule", "dev1", 3000*time.Millisecond, mock.Anything).Return(true).Once()

		// act
		snapshot, err := f.driver.ExecuteCommand(context.Background(), constants.CommandSetHSBState, device, props)

		// assert
		require.NoError(t, err)
		assert.Equal(t, models.Snapshot{On: true, Colour: models.Colour{Hue: 0, Saturation: 1, Brightness: 1}}, *snapshot)
	})

	t.Run("setBrightnessState: should only send the brightness", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		props := models.CommandProps{Duration: 0.5, Colour: &models.Colour{Hue: 200, Saturation: 0.1, Brightness: 0.4}}

		f.client.On("SetState", mock.Anything, "id:"+bulbID, mock.MatchedBy(func(p lifx.StateParams) bool {
			return p.Power == "on" && p.Color == "" && p.Brightness != nil && *p.Brightness == 0.4 && p.Duration == 0.5
		})).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("on", 200, 0.1, 0.4), nil).Once()
		f.scheduler.On("Schedule", "dev1", 1500*time.Millisecond, mock.Anything).Return(true).Once()

		// act
		_, err := f.driver.ExecuteCommand(context.Background(), constants.CommandSetBrightnessState, device, props)

		// assert
		assert.NoError(t, err)
	})

	t.Run("setBooleanState on=false: should power off", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		off := false

		f.client.On("SetState", mock.Anything, "id:"+bulbID, lifx.StateParams{Power: "off"}).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("off", 0, 0, 1), nil).Once()
		f.scheduler.On("Schedule", "dev1", time.Second, mock.Anything).Return(true).Once()

		// act
		snapshot, err := f.driver.ExecuteCommand(context.Background(), constants.CommandSetBooleanState, device, models.CommandProps{On: &off})

		// assert
		require.NoError(t, err)
		assert.False(t, snapshot.On)
	})

	t.Run("setBooleanState without on: should power on", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)

		f.client.On("SetState", mock.Anything, "id:"+bulbID, lifx.StateParams{Power: "on", Duration: 3}).Return(results("ok"), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("on", 0, 0, 1), nil).Once()
		f.scheduler.On("Schedule", "dev1", 4*time.Second, mock.Anything).Return(true).Once()

		// act
		_, err := f.driver.ExecuteCommand(context.Background(), constants.CommandSetBooleanState, device, models.CommandProps{Duration: 3})

		// assert
		assert.NoError(t, err)
	})

	t.Run("missing colour: should fail with a bad request before calling lifx", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)

		// act
		_, err := f.driver.ExecuteCommand(context.Background(), constants.CommandSetHSBState, device, models.CommandProps{Duration: 1})

		// assert
		assert.Equal(t, driver.KindBadRequest, driver.KindOf(err))
		f.client.AssertNotCalled(t, "SetState", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unparsable colour: should fail with a bad request", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		f.client.On("SetState", mock.Anything, "id:"+bulbID, mock.Anything).Return(nil, &lifx.APIError{StatusCode: 422, Message: "Unable to parse color: hue:999"}).Once()

		// act
		_, err := f.driver.ExecuteCommand(context.Background(), constants.CommandSetHSBState, device, colourProps)

		// assert
		assert.Equal(t, driver.KindBadRequest, driver.KindOf(err))
		assert.EqualError(t, err, "Unable to parse colour")
	})

	t.Run("unknown command: should fail without calling lifx", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)

		// act
		_, err := f.driver.ExecuteCommand(context.Background(), "cycleEffect", device, colourProps)

		// assert
		assert.ErrorIs(t, err, driver.ErrUnknownCommand)
	})
}

func Test_ExecuteCommand_Effects(t *testing.T) {

	t.Run("breatheEffect: should emit the effect confirmation without reading state", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		props := models.CommandProps{
			Colour:     &models.Colour{Hue: 100, Saturation: 1, Brightness: 1},
			FromColour: &models.Colour{Hue: 200, Saturation: 0.5, Brightness: 0.25},
			Period:     2,
			Cycles:     5,
			Persist:    true,
			Peak:       0.8,
		}
		peak := 0.8

		f.client.On("Breathe", mock.Anything, "id:"+bulbID, lifx.EffectParams{
			Color:     "hue:100 saturation:1 brightness:1",
			FromColor: "hue:200 saturation:0.5 brightness:0.25",
			Period:    2,
			Cycles:    5,
			Persist:   true,
			PowerOn:   true,
			Peak:      &peak,
		}).Return(results("ok"), nil).Once()
		f.emitter.On("CreateEvent", constants.EventBreatheLightEffect, "dev1", models.EffectConfirmation{BreatheEffect: true}).Return().Once()

		// act
		snapshot, err := f.driver.ExecuteCommand(context.Background(), constants.CommandBreatheEffect, device, props)

		// assert
		require.NoError(t, err)
		assert.Nil(t, snapshot)
		f.client.AssertNotCalled(t, "ListLights", mock.Anything, mock.Anything)
		f.scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pulseEffect: should emit the effect confirmation and never send a peak", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		props := models.CommandProps{Colour: &models.Colour{Hue: 5, Saturation: 1, Brightness: 1}, Period: 1, Cycles: 3, Peak: 0.9}

		f.client.On("Pulse", mock.Anything, "id:"+bulbID, lifx.EffectParams{
			Color:   "hue:5 saturation:1 brightness:1",
			Period:  1,
			Cycles:  3,
			PowerOn: true,
		}).Return(results("ok"), nil).Once()
		f.emitter.On("CreateEvent", constants.EventPulseLightEffect, "dev1", models.EffectConfirmation{PulseEffect: true}).Return().Once()

		// act
		snapshot, err := f.driver.ExecuteCommand(context.Background(), constants.CommandPulseEffect, device, props)

		// assert
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}

func Test_Discover(t *testing.T) {

	t.Run("should map every light to a descriptor with the full capability set", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		f.client.On("ListLights", mock.Anything, "all").Return([]lifx.Light{
			{ID: "a1", Label: "Kitchen"},
			{ID: "b2", Label: "Hall"},
		}, nil).Once()

		// act
		descriptors, err := f.driver.Discover(context.Background())

		// assert
		require.NoError(t, err)
		require.Len(t, descriptors, 2)
		assert.Equal(t, "a1", descriptors[0].OriginalID)
		assert.Equal(t, "Kitchen", descriptors[0].Name)
		assert.Equal(t, "Hall", descriptors[1].Name)
		assert.Equal(t, map[string]bool{
			"setHSBState":        true,
			"setBrightnessState": true,
			"toggle":             true,
			"setBooleanState":    true,
			"breatheEffect":      true,
			"pulseEffect":        true,
		}, descriptors[0].Commands)
		assert.Equal(t, map[string]bool{
			"LIGHT_STATE":          true,
			"PULSE_LIGHT_EFFECT":   true,
			"BREATHE_LIGHT_EFFECT": true,
		}, descriptors[1].Events)
	})

	t.Run("any failure: should be reported as an authentication error", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		cause := errors.New("dial tcp: i/o timeout")
		f.client.On("ListLights", mock.Anything, "all").Return(nil, cause).Once()

		// act
		_, err := f.driver.Discover(context.Background())

		// assert
		assert.Equal(t, driver.KindAuthentication, driver.KindOf(err))
		assert.EqualError(t, err, "dial tcp: i/o timeout")
		assert.ErrorIs(t, err, cause)
	})
}

func Test_SubmitAuthenticationStep0(t *testing.T) {

	t.Run("valid token: should save it, re-initialise the client and succeed", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		f.settings.On("Set", mock.Anything, models.Settings{Token: "abc"}).Return(nil).Once()
		f.client.On("Init", "abc").Return().Once()
		f.client.On("ListLights", mock.Anything, "all").Return([]lifx.Light{{ID: "a1"}}, nil).Once()

		// act
		result := f.driver.SubmitAuthenticationStep0(context.Background(), models.AuthProps{Data: "abc"})

		// assert
		assert.Equal(t, models.AuthResult{Success: true}, result)
	})

	t.Run("discover fails: should resolve with the raw message", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		f.settings.On("Set", mock.Anything, models.Settings{Token: "abc"}).Return(nil).Once()
		f.client.On("Init", "abc").Return().Once()
		f.client.On("ListLights", mock.Anything, "all").Return(nil, &lifx.APIError{StatusCode: 401, Message: "Invalid token"}).Once()

		// act
		result := f.driver.SubmitAuthenticationStep0(context.Background(), models.AuthProps{Data: "abc"})

		// assert
		assert.Equal(t, models.AuthResult{Success: false, Message: "Invalid token"}, result)
	})

	t.Run("saving fails: should resolve with the error and not touch the client", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		f.settings.On("Set", mock.Anything, models.Settings{Token: "abc"}).Return(errors.New("disk full")).Once()

		// act
		result := f.driver.SubmitAuthenticationStep0(context.Background(), models.AuthProps{Data: "abc"})

		// assert
		assert.Equal(t, models.AuthResult{Success: false, Message: "disk full"}, result)
		f.client.AssertNotCalled(t, "Init", "abc")
	})

	t.Run("should describe a single request data step", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		steps := f.driver.GetAuthenticationProcess()

		require.Len(t, steps, 1)
		assert.Equal(t, "RequestData", steps[0].Type)
		assert.Equal(t, "https://cloud.lifx.com/settings", steps[0].Button.URL)
		assert.Equal(t, "Access token", steps[0].DataLabel)
	})
}

func Test_TokenRefresh(t *testing.T) {

	t.Run("token changed in the store: should re-initialise the client before the call", func(t *testing.T) {
		t.Parallel()

		// arrange
		client := mocks.NewMockDriverLightClient(t)
		settings := mocks.NewMockDriverSettingsStore(t)
		emitter := mocks.NewMockDriverEventEmitter(t)
		scheduler := mocks.NewMockDriverTaskScheduler(t)

		settings.On("Get", mock.Anything).Return(models.Settings{Token: "old"}, nil).Once()
		settings.On("Get", mock.Anything).Return(models.Settings{Token: "new"}, nil).Once()
		client.On("Init", "old").Return().Once()
		client.On("Init", "new").Return().Once()
		client.On("ListLights", mock.Anything, "all").Return([]lifx.Light{}, nil).Once()

		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		d, err := driver.New(context.Background(), logger, settings, client, emitter, scheduler, time.Millisecond)
		require.NoError(t, err)

		// act
		_, err = d.Discover(context.Background())

		// assert
		assert.NoError(t, err)
	})

	t.Run("settings unreadable: New should fail", func(t *testing.T) {
		t.Parallel()

		// arrange
		settings := mocks.NewMockDriverSettingsStore(t)
		settings.On("Get", mock.Anything).Return(models.Settings{}, errors.New("no such table")).Once()
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})

		// act
		_, err := driver.New(context.Background(), logger, settings, mocks.NewMockDriverLightClient(t), mocks.NewMockDriverEventEmitter(t), mocks.NewMockDriverTaskScheduler(t), time.Millisecond)

		// assert
		assert.ErrorContains(t, err, "unable to read driver settings")
	})
}

func Test_InitDevices(t *testing.T) {

	t.Run("should emit the current state of every device and report failures", func(t *testing.T) {
		t.Parallel()

		// arrange
		f := newFixture(t)
		other := models.Device{ID: "dev2", Specs: models.DeviceSpecs{OriginalID: "d073d5000002"}}

		f.client.On("ListLights", mock.Anything, "id:"+bulbID).Return(light("on", 30, 0.5, 0.5), nil).Once()
		f.client.On("ListLights", mock.Anything, "id:d073d5000002").Return(nil, errors.New("Unable to reach bulb")).Once()
		f.emitter.On("CreateEvent", constants.EventLightState, "dev1", models.Snapshot{On: true, Colour: models.Colour{Hue: 30, Saturation: 0.5, Brightness: 0.5}}).Return().Once()

		// act
		err := f.driver.InitDevices(context.Background(), []models.Device{device, other})

		// assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dev2")
		f.emitter.AssertNumberOfCalls(t, "CreateEvent", 1)
	})
}

func Test_RemoveDevice(t *testing.T) {

	t.Run("should cancel pending reconciliations for the device", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.scheduler.On("Cancel", "dev1").Return(2).Once()

		assert.Equal(t, 2, f.driver.RemoveDevice(device))
	})

	t.Run("close: should stop the scheduler", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.scheduler.On("Stop").Return().Once()

		f.driver.Close()
	})
}

func Test_DriverIdentity(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "lifx", f.driver.Name())
	assert.Equal(t, "light", f.driver.Type())
	assert.Equal(t, "http", f.driver.Interface())
}
