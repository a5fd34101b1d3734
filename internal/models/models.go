package models

import "time"

// a platform device handle, owned by the host platform
type Device struct {
	ID    string      `json:"_id"`
	Specs DeviceSpecs `json:"specs"`
}

type DeviceSpecs struct {
	// the id assigned to the bulb by LIFX
	OriginalID string `json:"originalId"`
	Name       string `json:"name,omitempty"`
}

// hue 0-360, saturation and brightness 0-1
type Colour struct {
	Hue        int     `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

type CommandProps struct {
	// transition duration in seconds
	Duration   float64 `json:"duration"`
	Colour     *Colour `json:"colour,omitempty"`
	On         *bool   `json:"on,omitempty"`
	Period     float64 `json:"period,omitempty"`
	Cycles     float64 `json:"cycles,omitempty"`
	Persist    bool    `json:"persist,omitempty"`
	Peak       float64 `json:"peak,omitempty"`
	FromColour *Colour `json:"fromColour,omitempty"`
}

type CommandRequest struct {
	Device Device       `json:"device"`
	Props  CommandProps `json:"props"`
}

// normalised light state returned from commands and emitted in events
type Snapshot struct {
	On     bool   `json:"on"`
	Colour Colour `json:"colour"`
}

type EffectConfirmation struct {
	BreatheEffect bool `json:"breatheEffect,omitempty"`
	PulseEffect   bool `json:"pulseEffect,omitempty"`
}

// what the platform expects back from discovery
type DeviceDescriptor struct {
	OriginalID string          `json:"originalId"`
	Name       string          `json:"name"`
	Commands   map[string]bool `json:"commands"`
	Events     map[string]bool `json:"events"`
}

type Settings struct {
	Token string `json:"token"`
}

type AuthButton struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type AuthStep struct {
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	Button    AuthButton `json:"button"`
	DataLabel string     `json:"dataLabel"`
}

type AuthProps struct {
	Data string `json:"data"`
}

type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// an event published to subscribers of the event stream
type Event struct {
	Type     string    `json:"type"`
	DeviceID string    `json:"deviceId"`
	Payload  any       `json:"payload"`
	Time     time.Time `json:"time"`
}

type DriverInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Interface string `json:"interface"`
}
