package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

// stubGame ends its round on Enter with a fixed status.
type stubGame struct {
	final    core.GameStatus
	over     bool
	resets   int
	sawEnter bool
	lastDT   float64
	click    core.Vec2
}

func (g *stubGame) ID() string      { return "stub" }
func (g *stubGame) Title() string   { return "Stub" }
func (g *stubGame) Size() core.Vec2 { return core.V(100, 50) }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}

func (g *stubGame) Update(in *core.InputState, dt float64) {
	g.lastDT = dt
	if in.WasButtonPressed(core.ButtonLeft) {
		g.click = in.Button(core.ButtonLeft).Pos
	}
	if in.WasKeyPressed(core.KeyEnter) {
		g.sawEnter = true
		g.over = !g.over
	}
}

func (g *stubGame) Render(dst *render.List) {
	dst.PushRect(core.OffsetExtent(core.V(0, 0), g.Size()))
}

func (g *stubGame) State() core.GameStatus {
	if !g.over {
		return core.GameStatus{}
	}
	return g.final
}

// labeledGame names its sides like Tic-Tac-Toe.
type labeledGame struct{ stubGame }

func (g *labeledGame) WinnerLabel(s core.Side) string {
	if s == core.SideLeft {
		return "x"
	}
	return "o"
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 50, ScreenH: 10, TickRate: 60, Seed: 1}
}

func TestDriverDeliversPressOnce(t *testing.T) {
	g := &stubGame{}
	d := NewDriver(g, runtimeConfig(), DriverOptions{})
	if g.resets != 1 {
		t.Fatalf("NewDriver should reset once, got %d", g.resets)
	}

	now := time.Now()
	d.Press(core.KeyEnter, now)
	d.Step(now, 0.016)
	if !g.sawEnter || !g.over {
		t.Fatal("press not delivered")
	}
	if g.lastDT != 0.016 {
		t.Errorf("dt = %v, expected 0.016", g.lastDT)
	}

	// Held key without a new press does not toggle again
	d.Step(now.Add(10*time.Millisecond), 0.016)
	if !g.over {
		t.Error("held key was delivered as a second press")
	}
}

func TestDriverSlowTickKeepsPress(t *testing.T) {
	g := &stubGame{}
	d := NewDriver(g, runtimeConfig(), DriverOptions{})

	// A tick longer than the hold window
	now := time.Now()
	d.Press(core.KeyEnter, now)
	d.Step(now.Add(200*time.Millisecond), 0.2)
	if !g.sawEnter {
		t.Fatal("press expired before the game saw it")
	}
	if d.Input().IsKeyDown(core.KeyEnter) {
		t.Error("key should be released once its hold window ended")
	}

	g.sawEnter = false
	d.Step(now.Add(400*time.Millisecond), 0.2)
	if g.sawEnter {
		t.Error("expired key was delivered again")
	}
}

func TestDriverSavesRoundOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{final: core.GameStatus{
		GameOver: true, Score: 5, Winner: core.SideRight, LeftScore: 2, RightScore: 5,
	}}
	d := NewDriver(g, runtimeConfig(), DriverOptions{Store: store})

	now := time.Now()
	d.Step(now, 0.5)
	d.Step(now, 0.5)
	d.Press(core.KeyEnter, now)
	for i := 0; i < 3; i++ {
		d.Step(now, 0.016)
	}

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 5 {
		t.Fatalf("scores = %+v, expected one entry of 5", scores)
	}

	results, err := store.RecentResults("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v, expected one", results)
	}
	r := results[0]
	if r.Winner != storage.WinnerRight || r.LeftScore != 2 || r.RightScore != 5 {
		t.Errorf("result = %+v", r)
	}
	// Round time counts the two half-second steps
	if r.Duration < time.Second || r.Duration > 1100*time.Millisecond {
		t.Errorf("duration = %v, expected about 1s", r.Duration)
	}
}

func TestDriverUsesWinnerLabel(t *testing.T) {
	store := openStore(t)
	g := &labeledGame{stubGame{final: core.GameStatus{GameOver: true, Winner: core.SideLeft}}}
	d := NewDriver(g, runtimeConfig(), DriverOptions{Store: store})

	now := time.Now()
	d.Press(core.KeyEnter, now)
	d.Step(now, 0.016)

	counts, err := store.WinCounts("stub")
	if err != nil {
		t.Fatal(err)
	}
	if counts["x"] != 1 {
		t.Errorf("counts = %v, expected one win for x", counts)
	}
	// Zero score is not a high score
	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("high score = %d, expected none saved", high)
	}
}

func TestDriverRecordsDraw(t *testing.T) {
	store := openStore(t)
	g := &labeledGame{stubGame{final: core.GameStatus{GameOver: true, Draw: true}}}
	d := NewDriver(g, runtimeConfig(), DriverOptions{Store: store})

	now := time.Now()
	d.Press(core.KeyEnter, now)
	d.Step(now, 0.016)

	counts, _ := store.WinCounts("stub")
	if counts[storage.WinnerDraw] != 1 {
		t.Errorf("counts = %v, expected a draw", counts)
	}
}

func TestDriverSinglePlayerHasNoResult(t *testing.T) {
	store := openStore(t)
	g := &stubGame{final: core.GameStatus{GameOver: true, Score: 3}}
	d := NewDriver(g, runtimeConfig(), DriverOptions{Store: store})

	now := time.Now()
	d.Press(core.KeyEnter, now)
	d.Step(now, 0.016)

	if results, _ := store.RecentResults("stub", 10); len(results) != 0 {
		t.Errorf("single-player round stored a result: %+v", results)
	}
	if high, _ := store.HighScore("stub"); high != 3 {
		t.Errorf("high score = %d, expected 3", high)
	}
}

func TestDriverClickInGamePixels(t *testing.T) {
	g := &stubGame{}
	// 50x10 braille cells = 100x40 dots; the 100x50 field scales by 0.8
	d := NewDriver(g, runtimeConfig(), DriverOptions{})

	d.Click(core.ButtonLeft, true, 0, 0)
	d.Step(time.Now(), 0.016)

	want := d.raster.Layout().ToGame(0, 0)
	if g.click != want {
		t.Errorf("click at %v, expected %v", g.click, want)
	}
}

func TestDriverDraw(t *testing.T) {
	d := NewDriver(&stubGame{}, runtimeConfig(), DriverOptions{})
	screen := d.Draw()
	if screen.Width() != 50 || screen.Height() != 10 {
		t.Fatalf("screen %dx%d, expected 50x10", screen.Width(), screen.Height())
	}
	if !strings.ContainsRune(screen.Row(5), 0x28FF) {
		t.Errorf("middle row has no solid cells: %q", screen.Row(5))
	}
}
