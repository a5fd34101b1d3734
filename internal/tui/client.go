package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/models"
)

// DaemonClient talks to a running lifxd over its HTTP surface
type DaemonClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewDaemonClient(baseURL string, httpClient *http.Client) *DaemonClient {
	return &DaemonClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *DaemonClient) Discover(ctx context.Context) ([]models.DeviceDescriptor, error) {
	descriptors := []models.DeviceDescriptor{}
	if err := c.do(ctx, http.MethodGet, "/discover", nil, &descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

func (c *DaemonClient) InitDevices(ctx context.Context, devices []models.Device) error {
	return c.do(ctx, http.MethodPost, "/devices/init", devices, nil)
}

func (c *DaemonClient) Toggle(ctx context.Context, originalID string) (*models.Snapshot, error) {
	request := models.CommandRequest{Device: deviceFor(originalID)}
	snapshot := models.Snapshot{}
	if err := c.do(ctx, http.MethodPost, "/commands/"+constants.CommandToggle, request, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// the tui has no platform ids of its own so the bulb id stands in for both
func deviceFor(originalID string) models.Device {
	return models.Device{ID: originalID, Specs: models.DeviceSpecs{OriginalID: originalID}}
}

func (c *DaemonClient) do(ctx context.Context, method string, path string, body any, out any) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("Error encoding request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("Error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("Error calling lifxd: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		failure := struct {
			Error string `json:"error"`
		}{}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil || failure.Error == "" {
			return fmt.Errorf("lifxd responded %s", resp.Status)
		}
		return fmt.Errorf("lifxd responded %s: %s", resp.Status, failure.Error)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("Error parsing lifxd response: %w", err)
	}
	return nil
}
