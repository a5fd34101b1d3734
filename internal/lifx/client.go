package lifx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

const DefaultBaseURL = "https://api.lifx.com/v1"

// APIError is returned when the LIFX API responds with an error body,
// Message holds the API's own wording (e.g. "Invalid token").
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	logger     *log.Logger
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(logger *log.Logger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		logger:     logger,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Init replaces the access token used for every subsequent call
func (c *Client) Init(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) ListLights(ctx context.Context, selector string) ([]Light, error) {
	body, err := c.GET(ctx, c.lightsPath(selector, ""))
	if err != nil {
		return nil, err
	}

	lights := []Light{}
	if err := json.Unmarshal(body, &lights); err != nil {
		return nil, fmt.Errorf("error parsing lights response: %w", err)
	}

	return lights, nil
}

func (c *Client) SetState(ctx context.Context, selector string, params StateParams) (*Results, error) {
	return c.resultsRequest(ctx, http.MethodPut, c.lightsPath(selector, "/state"), params)
}

func (c *Client) Toggle(ctx context.Context, selector string, params ToggleParams) (*Results, error) {
	return c.resultsRequest(ctx, http.MethodPost, c.lightsPath(selector, "/toggle"), params)
}

func (c *Client) Breathe(ctx context.Context, selector string, params EffectParams) (*Results, error) {
	return c.resultsRequest(ctx, http.MethodPost, c.lightsPath(selector, "/effects/breathe"), params)
}

func (c *Client) Pulse(ctx context.Context, selector string, params EffectParams) (*Results, error) {
	return c.resultsRequest(ctx, http.MethodPost, c.lightsPath(selector, "/effects/pulse"), params)
}

func (c *Client) GET(ctx context.Context, path string) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodGet, path, nil)
}

func (c *Client) lightsPath(selector string, suffix string) string {
	if selector == "" {
		selector = "all"
	}
	return fmt.Sprintf("/lights/%s%s", url.PathEscape(selector), suffix)
}

func (c *Client) resultsRequest(ctx context.Context, verb string, path string, params any) (*Results, error) {
	requestBody, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("error encoding request for %s: %w", path, err)
	}

	body, err := c.makeRequest(ctx, verb, path, requestBody)
	if err != nil {
		return nil, err
	}

	results := Results{}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("error parsing results response: %w", err)
	}

	return &results, nil
}

func (c *Client) makeRequest(ctx context.Context, verb string, path string, body []byte) ([]byte, error) {

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Message: "Token required"}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	// set headers
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// make the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Error making LIFX API call", "path", path, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from %s: %w", path, err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMultiStatus:
		// 207 is returned when some of the selected lights didn't respond,
		// the per light status is in the results
		return responseBody, nil
	default:
		c.logger.Debug("LIFX API call failed", "path", path, "status", resp.Status)
		errResp := errorResponse{}
		if err := json.Unmarshal(responseBody, &errResp); err != nil || errResp.Error == "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

}
