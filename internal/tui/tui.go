package tui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	sse "github.com/r3labs/sse/v2"
	"github.com/samber/lo"
	"github.com/wheelibin/lifxd/internal/events"
	"github.com/wheelibin/lifxd/internal/models"
)

const backgroundColor = "#011922"
const headerBackgroundColor = "#1e7ba0"
const requestTimeout = 10 * time.Second

type daemonClient interface {
	Discover(ctx context.Context) ([]models.DeviceDescriptor, error)
	InitDevices(ctx context.Context, devices []models.Device) error
	Toggle(ctx context.Context, originalID string) (*models.Snapshot, error)
}

type bulbsMessage struct {
	bulbs []models.DeviceDescriptor
}

type lightStateMessage struct {
	deviceID string
	snapshot models.Snapshot
}

type errorMessage struct {
	err error
}

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color(headerBackgroundColor)).
	Padding(0, 1)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Background(lipgloss.Color(backgroundColor))

type Model struct {
	logger *log.Logger
	client daemonClient
	events chan *sse.Event

	table  table.Model
	bulbs  []models.DeviceDescriptor
	states map[string]models.Snapshot
	status string
}

func NewModel(logger *log.Logger, client daemonClient, eventChannel chan *sse.Event) Model {

	columns := []table.Column{
		{Title: "Light", Width: 20},
		{Title: "On", Width: 5},
		{Title: "Hue", Width: 5},
		{Title: "Sat", Width: 5},
		{Title: "Bri", Width: 5},
		{Title: "Colour", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		logger: logger,
		client: client,
		events: eventChannel,
		table:  t,
		states: map[string]models.Snapshot{},
		status: "loading bulbs...",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.discover, m.waitForEvent)
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.status = "refreshing..."
			return m, m.discover
		case "t":
			bulb, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.status = fmt.Sprintf("toggling %s...", bulb.Name)
			return m, m.toggle(bulb.OriginalID)
		}

	case bulbsMessage:
		m.bulbs = msg.bulbs
		sort.SliceStable(m.bulbs, func(i, j int) bool { return m.bulbs[i].Name < m.bulbs[j].Name })
		m.status = fmt.Sprintf("%d bulbs", len(m.bulbs))
		m.refreshRows()
		return m, m.initDevices(m.bulbs)

	case lightStateMessage:
		m.states[msg.deviceID] = msg.snapshot
		m.status = fmt.Sprintf("%d bulbs", len(m.bulbs))
		m.refreshRows()
		return m, nil

	case *sse.Event:
		// keep listening whatever the event turned out to be
		next := m.waitForEvent
		received, err := events.Decode(msg)
		if err != nil {
			m.logger.Error("Unable to decode event", "err", err)
			return m, next
		}
		snapshot, err := received.Snapshot()
		if err != nil {
			m.logger.Debug("Ignoring event", "type", received.Type, "device", received.DeviceID)
			return m, next
		}
		m.states[received.DeviceID] = snapshot
		m.refreshRows()
		return m, next

	case errorMessage:
		m.logger.Error(msg.err)
		m.status = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(message)
	return m, cmd
}

func (m Model) View() string {
	view := titleStyle.Render("lifx") + "\n" + baseStyle.Render(m.table.View()) + "\n"

	if bulb, ok := m.selected(); ok {
		if state, known := m.states[bulb.OriginalID]; known {
			view += bulb.Name + " " + swatch(state).Render("      ") + "\n"
		}
	}

	return view + statusStyle.Render(m.status) + "\n"
}

func (m *Model) refreshRows() {
	rows := lo.Map(m.bulbs, func(bulb models.DeviceDescriptor, _ int) table.Row {
		state, ok := m.states[bulb.OriginalID]
		if !ok {
			return table.Row{bulb.Name, "?", "", "", "", ""}
		}
		return table.Row{
			bulb.Name,
			fmt.Sprint(state.On),
			fmt.Sprint(state.Colour.Hue),
			fmt.Sprintf("%.2f", state.Colour.Saturation),
			fmt.Sprintf("%.2f", state.Colour.Brightness),
			colourOf(state).Hex(),
		}
	})
	m.table.SetRows(rows)
	m.table.UpdateViewport()
}

func (m Model) selected() (models.DeviceDescriptor, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.bulbs) {
		return models.DeviceDescriptor{}, false
	}
	return m.bulbs[cursor], true
}

func colourOf(state models.Snapshot) colorful.Color {
	brightness := state.Colour.Brightness
	if !state.On {
		brightness = 0
	}
	return colorful.Hsv(float64(state.Colour.Hue), state.Colour.Saturation, brightness)
}

func swatch(state models.Snapshot) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(colourOf(state).Hex()))
}

func (m Model) waitForEvent() tea.Msg {
	event, ok := <-m.events
	if !ok {
		return errorMessage{fmt.Errorf("event stream closed")}
	}
	return event
}

func (m Model) discover() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	bulbs, err := m.client.Discover(ctx)
	if err != nil {
		return errorMessage{err}
	}
	return bulbsMessage{bulbs}
}

// initDevices asks the daemon to publish the current state of every bulb
func (m Model) initDevices(bulbs []models.DeviceDescriptor) tea.Cmd {
	devices := lo.Map(bulbs, func(bulb models.DeviceDescriptor, _ int) models.Device {
		return deviceFor(bulb.OriginalID)
	})
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := m.client.InitDevices(ctx, devices); err != nil {
			return errorMessage{err}
		}
		return nil
	}
}

func (m Model) toggle(originalID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		snapshot, err := m.client.Toggle(ctx, originalID)
		if err != nil {
			return errorMessage{err}
		}
		return lightStateMessage{deviceID: originalID, snapshot: *snapshot}
	}
}

// Run starts the terminal UI and blocks until the user quits
func Run(logger *log.Logger, client daemonClient, eventChannel chan *sse.Event) error {
	p := tea.NewProgram(NewModel(logger, client, eventChannel), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("Error running tui: %w", err)
	}
	return nil
}
