package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wheelibin/lifxd/internal/lifx"
)

type Kind string

const (
	KindAuthentication Kind = "Authentication"
	KindConnection     Kind = "Connection"
	KindBadRequest     Kind = "BadRequest"
	KindDriver         Kind = "Driver"
	KindDevice         Kind = "Device"
)

// Error is the typed error handed back to the host platform
type Error struct {
	Kind    Kind
	Message string
	// the underlying cause, if any
	Err error
	// the raw result envelope for Driver errors
	Results *lifx.Results
	// set when the cause didn't match any known LIFX message
	Unmatched bool
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var ErrUnknownCommand = errors.New("unknown command")

func NewAuthenticationError(err error) *Error {
	return &Error{Kind: KindAuthentication, Message: "Not authenticated", Err: err}
}

func NewConnectionError() *Error {
	return &Error{Kind: KindConnection, Message: "Unable to connect to bulb"}
}

func NewBadRequestError(message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Err: err}
}

func NewDriverError(results *lifx.Results) *Error {
	msg := "unexpected empty result from LIFX"
	if results != nil && len(results.Results) > 0 {
		r := results.Results[0]
		msg = fmt.Sprintf("unexpected status %q for bulb %s", r.Status, r.ID)
	}
	return &Error{Kind: KindDriver, Message: msg, Results: results}
}

// KindOf returns the kind of a driver error, or "" for anything else
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ClassifyError maps errors raised by the LIFX client onto the driver's error
// kinds. The mapping matches the API's English error messages, anything it
// doesn't recognise is returned as an Unmatched Device error.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var driverErr *Error
	if errors.As(err, &driverErr) {
		return driverErr
	}

	msg := rawMessage(err)
	switch {
	case msg == "Invalid token", msg == "Token required":
		return NewAuthenticationError(err)
	case strings.HasPrefix(msg, "Unable to parse color"):
		return NewBadRequestError("Unable to parse colour", err)
	default:
		return &Error{Kind: KindDevice, Message: msg, Err: err, Unmatched: true}
	}
}

// rawMessage is the error text as LIFX worded it
func rawMessage(err error) string {
	var apiErr *lifx.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
