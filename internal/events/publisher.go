package events

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/models"
)

// Publisher emits driver events to anyone subscribed to the event stream
type Publisher struct {
	logger *log.Logger
	server *sse.Server
}

func NewPublisher(logger *log.Logger) *Publisher {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(constants.EventStream)

	return &Publisher{logger: logger, server: server}
}

func (p *Publisher) CreateEvent(eventType string, deviceID string, payload any) {
	data, err := json.Marshal(models.Event{
		Type:     eventType,
		DeviceID: deviceID,
		Payload:  payload,
		Time:     time.Now(),
	})
	if err != nil {
		p.logger.Error("Unable to encode event", "type", eventType, "device", deviceID, "err", err)
		return
	}

	p.logger.Debug("Publishing event", "type", eventType, "device", deviceID)
	p.server.Publish(constants.EventStream, &sse.Event{
		Event: []byte(eventType),
		Data:  data,
	})
}

// ServeHTTP serves the event stream, subscribers pass ?stream=events
func (p *Publisher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.server.ServeHTTP(w, r)
}

func (p *Publisher) Close() {
	p.server.Close()
}
