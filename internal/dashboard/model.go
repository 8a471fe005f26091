package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"litemon/internal/metrics"
)

// Sampler produces one metrics snapshot per sampling tick. The aggregator is
// the production implementation; tests inject fakes.
type Sampler interface {
	Tick(ctx context.Context) *metrics.Snapshot
	GPUSupported() bool
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	sampler        Sampler
	snapshot       *metrics.Snapshot
	history        *History
	scroll         ScrollState
	interval       time.Duration
	renderInterval time.Duration
	width          int
	height         int
	quitting       bool
	help           help.Model
	keys           keyMap
	log            zerolog.Logger
}

// sampleTickMsg signals that it is time to take a new snapshot.
type sampleTickMsg time.Time

// renderTickMsg drives re-renders between snapshots.
type renderTickMsg time.Time

// snapshotMsg carries a freshly assembled snapshot from the sampler.
type snapshotMsg *metrics.Snapshot

// NewModel creates a dashboard model.
func NewModel(sampler Sampler, interval, renderInterval time.Duration, log zerolog.Logger) Model {
	return Model{
		sampler:        sampler,
		history:        NewHistory(DefaultHistorySize),
		interval:       interval,
		renderInterval: renderInterval,
		help:           help.New(),
		keys:           keys,
		log:            log,
	}
}

// Init starts both tick timers and triggers the first sample immediately so
// the dashboard does not sit empty for a full interval.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.sampleCmd(),
		m.sampleTickCmd(),
		m.renderTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.recomputeScrollMax()

	case tea.QuitMsg:
		m.quitting = true

	case sampleTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.sampleTickCmd(), m.sampleCmd())

	case renderTickMsg:
		if m.quitting {
			return m, nil
		}
		// Receiving the message is enough; Bubble Tea re-renders the view
		// after every Update.
		return m, m.renderTickCmd()

	case snapshotMsg:
		if m.quitting {
			// A sample that was in flight when quit arrived is dropped.
			return m, nil
		}
		m.snapshot = msg
		m.history.Push(msg)
		m.recomputeScrollMax()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		// A second quit press while shutting down is a no-op.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll.Scroll(-1)

	case key.Matches(msg, m.keys.ScrollDown):
		m.scroll.Scroll(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scroll.Scroll(-m.coreWindow())

	case key.Matches(msg, m.keys.PageDown):
		m.scroll.Scroll(m.coreWindow())

	case key.Matches(msg, m.keys.Top):
		m.scroll.ToTop()

	case key.Matches(msg, m.keys.Bottom):
		m.scroll.ToBottom()

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snapshot == nil {
		return m.renderWaiting()
	}
	return m.renderDashboard()
}

// sampleTickCmd schedules the next sampling tick.
func (m Model) sampleTickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return sampleTickMsg(t)
	})
}

// renderTickCmd schedules the next render tick.
func (m Model) renderTickCmd() tea.Cmd {
	return tea.Tick(m.renderInterval, func(t time.Time) tea.Msg {
		return renderTickMsg(t)
	})
}

// sampleCmd runs one sampling cycle off the UI goroutine and delivers the
// resulting snapshot. The cycle is bounded by the sampling interval; a tick
// that cannot finish in time yields a partial snapshot rather than stalling
// the dashboard.
func (m Model) sampleCmd() tea.Cmd {
	sampler := m.sampler
	interval := m.interval
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		return snapshotMsg(sampler.Tick(ctx))
	}
}

// recomputeScrollMax re-clamps the core list scroll bounds after a resize or
// a change in core count.
func (m *Model) recomputeScrollMax() {
	cores := 0
	if m.snapshot != nil && m.snapshot.CPU != nil {
		cores = len(m.snapshot.CPU.Cores)
	}
	m.scroll.SetMax(cores - m.coreWindow())
}

// coreWindow returns how many per-core rows fit in the CPU section given the
// space the other sections need.
func (m Model) coreWindow() int {
	if m.height == 0 {
		return 8
	}
	w := m.height - 22
	if w < 4 {
		w = 4
	}
	if w > 16 {
		w = 16
	}
	return w
}
