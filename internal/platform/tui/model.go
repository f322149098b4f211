package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// Options configure a terminal session.
type Options struct {
	Width, Height int              // initial terminal size; updated on resize
	Sink          audio.Sink       // defaults to a silent sink feeding Queue
	Queue         *core.EventQueue // events from outside the UI loop, e.g. audio
	Recorder      *replay.Recorder // optional
	Logger        *log.Logger
}

// Model is the Bubble Tea model running a game.
type Model struct {
	game     *flappy.Game
	queue    *core.EventQueue
	sink     audio.Sink
	recorder *replay.Recorder
	logger   *log.Logger

	screen   *core.Screen
	raster   *Rasterizer
	keys     KeyMap
	help     help.Model
	lastTick time.Time
	maxDelta float64
	fps      int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	if opts.Queue == nil {
		opts.Queue = core.NewEventQueue()
	}
	if opts.Sink == nil {
		q := opts.Queue
		opts.Sink = audio.Silent{OnPriorityDone: func() { q.Push(core.EventPriorityFinished) }}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := game.Config()
	h := help.New()
	h.Width = opts.Width

	return Model{
		game:     game,
		queue:    opts.Queue,
		sink:     opts.Sink,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		screen:   core.NewScreen(opts.Width, max(opts.Height-1, 0)),
		raster:   NewRasterizer(cfg.Screen.Width, cfg.Screen.Height, game.Assets()),
		keys:     DefaultKeyMap(),
		help:     h,
		maxDelta: cfg.Screen.MaxFrameDelta,
		fps:      cfg.Screen.FPS,
		height:   opts.Height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.queue.Push(m.keys.MapKey(msg))
		return m, nil

	case tea.MouseMsg:
		m.queue.Push(MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one frame: drain inputs, step, record, play sounds.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.maxDelta)
	m.lastTick = now

	events := m.queue.Drain()
	frame := m.game.Step(events, dt)
	if m.recorder != nil {
		m.recorder.Record(events, dt)
	}
	audio.PlayAll(m.sink, frame.Sounds)

	if m.game.Done() {
		m.logger.Debug("game exited", "score", frame.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys))

	// The help bar grows when expanded; the game area gives way.
	rows := max(m.height-lipgloss.Height(helpView), 0)
	if rows != m.screen.Height() {
		m.screen.Resize(m.screen.Width(), rows)
	}
	m.raster.Draw(m.screen, m.game.Draws())
	if m.game.State() == flappy.StatePaused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED", m.raster.palette.Text)
	}

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program and blocks until the game exits.
func Run(game *flappy.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
