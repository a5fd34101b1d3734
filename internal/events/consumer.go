package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/models"
)

type Consumer struct {
	Logger *log.Logger

	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewConsumer(logger *log.Logger) *Consumer {
	return &Consumer{Logger: logger}
}

// Subscribe connects to the daemon's event stream at url and delivers raw events on eventChannel
func (c *Consumer) Subscribe(url string, eventChannel chan *sse.Event) error {

	c.eventChannel = eventChannel
	c.client = sse.NewClient(url)

	c.client.OnConnect(func(_ *sse.Client) {
		c.Logger.Info("Connected to lifxd, listening for events...")
	})
	c.client.OnDisconnect(func(_ *sse.Client) {
		c.Logger.Info("Disconnected from lifxd")
	})

	if err := c.client.SubscribeChan(constants.EventStream, c.eventChannel); err != nil {
		return fmt.Errorf("error subscribing to driver events: %w", err)
	}
	return nil
}

func (c *Consumer) Unsubscribe() {
	if c.client == nil {
		return
	}
	c.Logger.Debug("Unsubscribe events")
	c.client.Unsubscribe(c.eventChannel)
}

// Received is an event as read off the stream, the payload is decoded on demand
type Received struct {
	Type     string          `json:"type"`
	DeviceID string          `json:"deviceId"`
	Payload  json.RawMessage `json:"payload"`
	Time     time.Time       `json:"time"`
}

func Decode(event *sse.Event) (Received, error) {
	received := Received{}
	if err := json.Unmarshal(event.Data, &received); err != nil {
		return Received{}, fmt.Errorf("error parsing event: %w", err)
	}
	return received, nil
}

func (r Received) Snapshot() (models.Snapshot, error) {
	snapshot := models.Snapshot{}
	if r.Type != constants.EventLightState {
		return snapshot, fmt.Errorf("%s event does not carry a light state", r.Type)
	}
	if err := json.Unmarshal(r.Payload, &snapshot); err != nil {
		return snapshot, fmt.Errorf("error parsing light state: %w", err)
	}
	return snapshot, nil
}
