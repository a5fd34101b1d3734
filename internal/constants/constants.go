package constants

import "time"

// driver identity reported to the host platform
const DriverName = "lifx"
const DriverType = "light"
const DriverInterface = "http"

// platform events
const EventLightState = "LIGHT_STATE"
const EventPulseLightEffect = "PULSE_LIGHT_EFFECT"
const EventBreatheLightEffect = "BREATHE_LIGHT_EFFECT"

// commands
const CommandSetHSBState = "setHSBState"
const CommandSetBrightnessState = "setBrightnessState"
const CommandToggle = "toggle"
const CommandSetBooleanState = "setBooleanState"
const CommandBreatheEffect = "breatheEffect"
const CommandPulseEffect = "pulseEffect"

// lifx result statuses
const ResultStatusOK = "ok"
const ResultStatusOffline = "offline"

const PowerOn = "on"
const PowerOff = "off"

const SelectorAll = "all"

// time to wait before reading the state back after a toggle
const ToggleReconcileDelay = 3 * time.Second

// margin added on top of a transition duration before reading the state back
const TransitionSettleMargin = time.Second

const AccessTokenURL = "https://cloud.lifx.com/settings"

const EventStream = "events"
