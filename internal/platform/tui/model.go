package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/raster"
)

// statusTicks is how long a status message stays in the footer.
const statusTicks = 120

// Options configures a game Model.
type Options struct {
	Config        config.FlappyConfig
	Runtime       core.RuntimeConfig
	Best          flappy.ScoreObserver // May be nil
	Logger        *log.Logger          // May be nil
	ScreenshotDir string               // Where ctrl+s writes PNGs
}

// Model is the Bubble Tea model for the flappy game.
type Model struct {
	session  *flappy.Session
	renderer *flappy.Renderer
	canvas   *raster.Canvas
	screen   *core.Screen
	out      *ScreenRenderer

	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	shotDir string

	status      string
	statusTicks int
	tooSmall    bool
	quitting    bool
}

// NewModel creates a new Bubble Tea model. The simulation is sized from
// opts.Runtime and resized on every window size message.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer, err := flappy.NewRenderer(opts.Config)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		renderer: renderer,
		screen:   core.NewScreen(1, 1),
		out:      NewScreenRenderer(),
		cfg:      opts.Config,
		runtime:  cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
	}

	w, h := m.worldSize(cfg.ScreenW, cfg.ScreenH)
	m.canvas = raster.New(w, h)
	sim := flappy.New(opts.Config, float64(w), float64(h), cfg.Seed)
	m.session = flappy.NewSession(sim, opts.Best)
	m.layout(cfg.ScreenW, cfg.ScreenH)

	return m, nil
}

// gameRows is the number of rows left for the playfield; the last row
// holds the help footer.
func gameRows(rows int) int {
	return rows - 1
}

// worldSize maps a terminal size to world pixels, never below the minimum
// playable size.
func (m Model) worldSize(cols, rows int) (int, int) {
	r := m.cfg.Render
	cols = max(cols, r.MinCols)
	gr := max(gameRows(rows), m.cfg.MinGameRows())
	return cols * r.PixelsPerCell, gr * 2 * r.PixelsPerCell
}

// layout applies a terminal size. Too small terminals pause the game
// behind a diagnostic instead of shrinking the world below what the
// obstacle course needs.
func (m *Model) layout(cols, rows int) {
	m.runtime.ScreenW = cols
	m.runtime.ScreenH = rows
	m.help.Width = cols

	m.tooSmall = cols < m.cfg.Render.MinCols || gameRows(rows) < m.cfg.MinGameRows()
	if m.tooSmall {
		return
	}

	w, h := m.worldSize(cols, rows)
	m.screen.Resize(cols, gameRows(rows))
	m.canvas.Resize(w, h)
	m.session.Resize(float64(w), float64(h))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Flaps apply immediately; they are
// not deferred to the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	// Only quit works behind the diagnostic
	if m.tooSmall {
		return m, nil
	}

	switch action {
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionFlap:
		// The flap key doubles as restart once the bird is down
		if m.session.Simulation().State() == flappy.StateGameOver {
			m.restart()
		} else {
			m.flap()
		}
	case core.ActionRestart:
		m.restart()
	}

	return m, nil
}

// handleMouse maps a left press to a flap, or to a restart when it lands
// on the play-again button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.tooSmall {
		return m, nil
	}

	if m.session.Simulation().State() == flappy.StateGameOver {
		if l, ok := m.bannerLayout(); ok && l.button.Contains(msg.X, msg.Y) {
			m.restart()
		}
		return m, nil
	}

	m.flap()
	return m, nil
}

func (m *Model) flap() {
	wasStart := m.session.Simulation().State() == flappy.StateStart
	if m.session.Flap() && wasStart {
		m.logger.Debug("session started", "best", m.session.Best())
	}
}

func (m *Model) restart() {
	score := m.session.Simulation().Score()
	if m.session.Restart() {
		m.logger.Debug("session restarted", "last_score", score, "best", m.session.Best())
	}
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	// Paused while the diagnostic is up
	if !m.tooSmall {
		res := m.session.Tick()
		for _, e := range res.Events {
			switch e.Kind {
			case flappy.EventScored:
				m.logger.Debug("pipe cleared", "score", e.Score)
			case flappy.EventCrashed:
				m.logger.Info("session over", "score", e.Score, "cause", e.Cause, "best", m.session.Best())
			}
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// bannerLayout returns the overlay for the current state, if any.
func (m Model) bannerLayout() (panelLayout, bool) {
	b, ok := flappy.BannerFor(m.session.Snapshot(), m.session.Best())
	if !ok {
		return panelLayout{}, false
	}
	return layoutBanner(m.screen.Width(), m.screen.Height(), b), true
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.canvas, m.session.Snapshot())

	name := fmt.Sprintf("%s_%s.png", flappy.GameID, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := m.canvas.SavePNG(path); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return tooSmallView(m.runtime.ScreenW, m.runtime.ScreenH, m.cfg.Render.MinCols, m.cfg.MinGameRows()+1)
	}

	snap := m.session.Snapshot()
	m.renderer.Render(m.canvas, snap)
	Present(m.canvas.Image(), m.screen, m.cfg.Render.PixelsPerCell)

	pal := m.renderer.Palette()
	if l, ok := m.bannerLayout(); ok {
		drawBanner(m.screen, l, pal)
	} else {
		drawHUD(m.screen, snap.Score, m.session.Best(), pal)
	}

	return m.out.Render(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.status != "" {
		return lipgloss.NewStyle().Faint(true).Render(m.status)
	}
	return m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap and press the play-again button
	)

	_, err = p.Run()
	return err
}
