package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

// winnerLabeler is implemented by games whose sides are not left/right.
type winnerLabeler interface {
	WinnerLabel(core.Side) string
}

// DriverOptions configures a Driver.
type DriverOptions struct {
	Store      *storage.Store // Optional; nil disables persistence
	Logger     *log.Logger    // Optional; nil discards
	Config     config.Options
	Raster     RasterMode
	HoldWindow time.Duration
}

// Driver runs one game frame by frame: input in, Update, Render, raster.
// It also records finished rounds. It holds no Bubble Tea state so it can
// be shared by the local program and SSH sessions.
type Driver struct {
	game    registry.Game
	runtime core.RuntimeConfig
	opts    DriverOptions
	logger  *log.Logger

	in     *core.InputState
	keys   *KeyTracker
	list   *render.List
	raster *Rasterizer
	screen *core.Screen

	fitted    core.Vec2 // Game size the raster layout was computed for
	roundTime float64
	wasOver   bool
}

// NewDriver configures and resets game for the given runtime.
func NewDriver(game registry.Game, runtime core.RuntimeConfig, opts DriverOptions) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = NewDiscardLogger()
	}
	d := &Driver{
		game:    game,
		runtime: runtime,
		opts:    opts,
		logger:  logger.With("game", game.ID()),
		in:      core.NewInputState(),
		keys:    NewKeyTracker(opts.HoldWindow),
		list:    render.NewList(),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
	}
	d.raster = NewRasterizer(Layout{})

	d.configure()
	d.Reset()
	return d
}

func (d *Driver) configure() {
	c, ok := d.game.(registry.Configurable)
	if !ok {
		return
	}
	if err := c.Configure(d.opts.Config); err != nil {
		d.logger.Warn("config load failed, using defaults", "error", err)
	}
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Input returns the live input snapshot.
func (d *Driver) Input() *core.InputState {
	return d.in
}

// Reset restarts the game with the current runtime config.
func (d *Driver) Reset() {
	d.game.Reset(d.runtime)
	d.roundTime = 0
	d.wasOver = false
	d.refit()
	d.logger.Debug("reset", "seed", d.runtime.Seed)
}

// Reload re-reads the game's config; it applies at the next round.
func (d *Driver) Reload() {
	d.configure()
	d.logger.Info("config reloaded")
}

// Resize refits the game into a new terminal size without resetting it.
func (d *Driver) Resize(cols, rows int) {
	d.runtime.ScreenW, d.runtime.ScreenH = cols, rows
	d.refit()
}

func (d *Driver) refit() {
	d.fitted = d.game.Size()
	d.raster.SetLayout(NewLayout(d.opts.Raster, d.runtime.ScreenW, d.runtime.ScreenH, d.fitted))
}

// Press records a key press at now.
func (d *Driver) Press(id core.KeyID, now time.Time) {
	d.keys.Press(d.in, id, now)
}

// Click records a pointer button change at a terminal cell.
func (d *Driver) Click(id core.ButtonID, down bool, col, row int) {
	d.in.SetButton(id, down, d.raster.Layout().ToGame(col, row))
}

// Hover records pointer motion over a terminal cell.
func (d *Driver) Hover(col, row int) {
	d.in.SetPointer(d.raster.Layout().ToGame(col, row))
}

// Step advances one frame of dt seconds measured at now.
// Held keys expire after the update, so every press reaches at least one
// Update no matter how long the tick is.
func (d *Driver) Step(now time.Time, dt float64) {
	d.game.Update(d.in, dt)
	d.in.ResetTransitions()
	d.keys.Expire(d.in, now)

	// A reconfigured field takes effect when the game resets itself
	if d.game.Size() != d.fitted {
		d.refit()
	}

	status := d.game.State()
	if !status.Paused && !status.GameOver {
		d.roundTime += dt
	}
	if status.GameOver && !d.wasOver {
		d.finishRound(status)
	}
	if !status.GameOver && d.wasOver {
		d.roundTime = 0
	}
	d.wasOver = status.GameOver
}

// finishRound stores the score and, for two-sided games, the result.
// Storage is best-effort: failures are logged and play goes on.
func (d *Driver) finishRound(status core.GameStatus) {
	id := d.game.ID()
	d.logger.Info("round finished", "score", status.Score, "seconds", d.roundTime)

	if d.opts.Store == nil {
		return
	}

	if status.Score > 0 {
		if _, err := d.opts.Store.SaveScore(id, status.Score); err != nil {
			d.logger.Error("cannot save score", "error", err)
		} else {
			d.logger.Info("score saved", "score", status.Score)
		}
	}

	if winner := d.winnerLabel(status); winner != "" {
		_, err := d.opts.Store.SaveResult(storage.RoundResult{
			GameID:     id,
			Winner:     winner,
			LeftScore:  status.LeftScore,
			RightScore: status.RightScore,
			Duration:   time.Duration(d.roundTime * float64(time.Second)),
		})
		if err != nil {
			d.logger.Error("cannot save round result", "error", err)
		}
	}
}

// winnerLabel returns "" for rounds without a side winner or draw.
func (d *Driver) winnerLabel(status core.GameStatus) string {
	switch {
	case status.Draw:
		return storage.WinnerDraw
	case status.Winner == core.SideNone:
		return ""
	}
	if l, ok := d.game.(winnerLabeler); ok {
		return l.WinnerLabel(status.Winner)
	}
	return status.Winner.String()
}

// View renders the current frame to a styled string.
func (d *Driver) View() string {
	d.Draw()
	return RenderScreen(d.screen)
}

// Draw renders the game into the driver's screen and returns it.
func (d *Driver) Draw() *core.Screen {
	d.list.Reset()
	d.game.Render(d.list)
	d.raster.Draw(d.list, d.screen)
	return d.screen
}

// Status returns the game's current status.
func (d *Driver) Status() core.GameStatus {
	return d.game.State()
}

// Close lifts held keys so the game sees releases if it is reused.
func (d *Driver) Close() {
	d.keys.ReleaseAll(d.in)
}
