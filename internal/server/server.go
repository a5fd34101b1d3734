package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lifxd/internal/driver"
	"github.com/wheelibin/lifxd/internal/models"
)

type commandDriver interface {
	Info() models.DriverInfo
	GetAuthenticationProcess() []models.AuthStep
	SubmitAuthenticationStep0(ctx context.Context, props models.AuthProps) models.AuthResult
	Discover(ctx context.Context) ([]models.DeviceDescriptor, error)
	InitDevices(ctx context.Context, devices []models.Device) error
	RemoveDevice(device models.Device) int
	ExecuteCommand(ctx context.Context, name string, device models.Device, props models.CommandProps) (*models.Snapshot, error)
}

// Server exposes the driver to the host platform as JSON over HTTP
type Server struct {
	logger *log.Logger
	driver commandDriver
	events http.Handler
}

func NewServer(logger *log.Logger, driver commandDriver, events http.Handler) *Server {
	return &Server{logger: logger, driver: driver, events: events}
}

type errorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /driver", s.handleInfo)
	mux.HandleFunc("GET /authentication", s.handleAuthenticationSteps)
	mux.HandleFunc("POST /authentication/0", s.handleAuthenticationStep0)
	mux.HandleFunc("GET /discover", s.handleDiscover)
	mux.HandleFunc("POST /devices/init", s.handleInitDevices)
	mux.HandleFunc("DELETE /devices/{id}/reconciliation", s.handleRemoveDevice)
	mux.HandleFunc("POST /commands/{name}", s.handleCommand)
	if s.events != nil {
		mux.Handle("GET /events", s.events)
	}

	return s.logRequests(mux)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.driver.Info())
}

func (s *Server) handleAuthenticationSteps(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.driver.GetAuthenticationProcess())
}

func (s *Server) handleAuthenticationStep0(w http.ResponseWriter, r *http.Request) {
	props := models.AuthProps{}
	if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Type: string(driver.KindBadRequest)})
		return
	}

	// the outcome is always reported in the body
	s.writeJSON(w, http.StatusOK, s.driver.SubmitAuthenticationStep0(r.Context(), props))
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	devices, err := s.driver.Discover(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, devices)
}

func (s *Server) handleInitDevices(w http.ResponseWriter, r *http.Request) {
	devices := []models.Device{}
	if err := json.NewDecoder(r.Body).Decode(&devices); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Type: string(driver.KindBadRequest)})
		return
	}

	if err := s.driver.InitDevices(r.Context(), devices); err != nil {
		// partial failures are logged, the devices that answered have had their state emitted
		s.logger.Warn("Some devices could not be initialised", "err", err)
		s.writeJSON(w, http.StatusMultiStatus, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveDevice(w http.ResponseWriter, r *http.Request) {
	cancelled := s.driver.RemoveDevice(models.Device{ID: r.PathValue("id")})
	s.writeJSON(w, http.StatusOK, map[string]int{"cancelled": cancelled})
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	request := models.CommandRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Type: string(driver.KindBadRequest)})
		return
	}

	snapshot, err := s.driver.ExecuteCommand(r.Context(), r.PathValue("name"), request.Device, request.Props)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if snapshot == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, driver.ErrUnknownCommand) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	kind := driver.KindOf(err)
	s.writeJSON(w, statusForKind(kind), errorResponse{Error: err.Error(), Type: string(kind)})
}

func statusForKind(kind driver.Kind) int {
	switch kind {
	case driver.KindAuthentication:
		return http.StatusUnauthorized
	case driver.KindBadRequest:
		return http.StatusBadRequest
	case driver.KindConnection:
		return http.StatusGatewayTimeout
	case driver.KindDriver:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Unable to write response", "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("Handled request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}
