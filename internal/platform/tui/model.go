package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
)

// configChangedMsg reports that a game's YAML changed on disk.
type configChangedMsg struct {
	gameID string
}

// watchConfig waits for the next watcher event.
func watchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		id, ok := <-w.Events
		if !ok {
			return nil
		}
		return configChangedMsg{gameID: id}
	}
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	driver     *Driver
	clock      *core.FrameClock
	tickRate   int
	loop       uint64
	watcher    *config.Watcher
	embedded   bool // Inside a session; Esc returns to its menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model driving game. The watcher is optional.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts DriverOptions, watcher *config.Watcher) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		driver:   NewDriver(game, cfg, opts),
		clock:    core.NewFrameClock(),
		tickRate: cfg.TickRate,
		loop:     nextLoop(),
		watcher:  watcher,
	}
}

// Init starts the tick loop and the config watch.
func (m GameModel) Init() tea.Cmd {
	m.clock.Restart()
	return tea.Batch(tickCmd(m.tickRate, m.loop), watchConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.driver.Resize(msg.Width, msg.Height)
		return m, nil

	case configChangedMsg:
		if msg.gameID == m.driver.Game().ID() {
			m.driver.Reload()
		}
		return m, watchConfig(m.watcher)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		m.driver.Step(msg.Time, m.clock.Tick())
		return m, tickCmd(m.tickRate, m.loop)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if IsQuitKey(msg) {
		m.quitting = true
		m.driver.Close()
		return m, tea.Quit
	}

	// No game binds Esc, so it always leaves
	if msg.String() == "esc" {
		m.backToMenu = true
		m.driver.Close()
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	}

	if id, ok := MapKey(msg); ok {
		m.driver.Press(id, time.Now())
	}
	return m, nil
}

// handleMouse forwards clicks and motion in game pixels.
func (m GameModel) handleMouse(msg tea.MouseMsg) {
	var id core.ButtonID
	switch msg.Button {
	case tea.MouseButtonLeft:
		id = core.ButtonLeft
	case tea.MouseButtonRight:
		id = core.ButtonRight
	case tea.MouseButtonMiddle:
		id = core.ButtonMiddle
	default:
		m.driver.Hover(msg.X, msg.Y)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.driver.Click(id, true, msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.driver.Click(id, false, msg.X, msg.Y)
	default:
		m.driver.Hover(msg.X, msg.Y)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return m.driver.View()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Driver returns the frame driver behind the model.
func (m GameModel) Driver() *Driver {
	return m.driver
}

// RunOptions configures a local game or menu session.
type RunOptions struct {
	Driver  DriverOptions
	Runtime core.RuntimeConfig
	Watch   bool // Hot-reload YAML configs while playing
}

// openWatcher watches the custom config file or the standard config dirs.
func (o RunOptions) openWatcher() *config.Watcher {
	if !o.Watch {
		return nil
	}
	var w *config.Watcher
	var err error
	if o.Driver.Config.Path != "" {
		w, err = config.WatchFile(o.Driver.Config.Path)
	} else {
		w, err = config.NewWatcher(config.SearchDirs()...)
	}
	if err != nil {
		if o.Driver.Logger != nil {
			o.Driver.Logger.Warn("config watch disabled", "error", err)
		}
		return nil
	}
	return w
}

// Run starts a Bubble Tea program playing one game until the user quits.
func Run(game registry.Game, opts RunOptions) error {
	watcher := opts.openWatcher()
	if watcher != nil {
		defer watcher.Close()
	}

	model := NewGameModel(game, opts.Runtime, opts.Driver, watcher)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tic-Tac-Toe takes clicks
	)

	_, err := p.Run()
	return err
}
