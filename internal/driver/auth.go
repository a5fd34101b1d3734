package driver

import (
	"context"

	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/models"
)

func (d *Driver) GetAuthenticationProcess() []models.AuthStep {
	return []models.AuthStep{{
		Type:    "RequestData",
		Message: "In order to use LIFX bulbs you must provide an access token. This can be obtained from your LIFX account settings",
		Button: models.AuthButton{
			URL:   constants.AccessTokenURL,
			Label: "Get access token",
		},
		DataLabel: "Access token",
	}}
}

// SubmitAuthenticationStep0 stores the token and checks it by discovering
// lights. It reports failure in the result rather than returning an error,
// the message is passed through as LIFX worded it.
func (d *Driver) SubmitAuthenticationStep0(ctx context.Context, props models.AuthProps) models.AuthResult {
	newSettings := models.Settings{Token: props.Data}

	if err := d.settings.Set(ctx, newSettings); err != nil {
		d.logger.Error("Unable to save settings", "err", err)
		return models.AuthResult{Success: false, Message: err.Error()}
	}

	d.mu.Lock()
	d.client.Init(newSettings.Token)
	d.token = newSettings.Token
	d.initialised = true
	d.mu.Unlock()

	// check the token is valid
	if _, err := d.discover(ctx); err != nil {
		d.logger.Warn("Access token rejected", "err", err)
		return models.AuthResult{Success: false, Message: rawMessage(err)}
	}

	d.logger.Info("Authenticated with LIFX")
	return models.AuthResult{Success: true}
}
