package offscreen

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/games/pong"
	"github.com/vovakirdan/quad-arcade/internal/games/snake"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

func seeded(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestRunnerTapStartsPong(t *testing.T) {
	g := pong.New()
	r := NewRunner(g, seeded(1), 0)

	var script Script
	script.Tap(0, core.KeySpace)
	list := r.Run(10, script)

	if _, ok := g.Phase().(pong.Playing); !ok {
		t.Fatalf("phase = %T, expected Playing", g.Phase())
	}
	if r.Frame() != 10 {
		t.Errorf("Frame() = %d, expected 10", r.Frame())
	}
	if list.Len() == 0 {
		t.Error("no commands rendered")
	}
}

func TestRunnerHoldKeepsKeyDown(t *testing.T) {
	g := snake.New()
	r := NewRunner(g, seeded(1), 0.05)

	// Held Up turns the snake from Left to Up on its next step
	script := Script{Holds: []Hold{{Key: core.KeyUp, From: 0, To: 5}}}
	r.Run(5, script)

	if got := g.Snapshot().Dir; got != snake.DirUp {
		t.Errorf("direction = %v, expected Up", got)
	}
}

func TestRunnerDeterministic(t *testing.T) {
	var script Script
	script.Tap(0, core.KeySpace)
	script.Holds = []Hold{{Key: core.KeyW, From: 5, To: 40}}

	a := NewRunner(pong.New(), seeded(42), 0).Run(120, script)
	b := NewRunner(pong.New(), seeded(42), 0).Run(120, script)

	if !reflect.DeepEqual(a.Commands(), b.Commands()) {
		t.Error("same seed and script rendered different frames")
	}
}

func rgbAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func sameRGB(a, b color.RGBA) bool {
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d > -3 && d < 3
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B)
}

func testList() *render.List {
	list := render.NewList()
	list.SetBackground(core.ColorBlue)
	list.PushRect(core.OffsetExtent(core.V(10, 10), core.V(20, 20)))
	list.PushRectColor(core.OffsetExtent(core.V(20, 20), core.V(10, 10)), core.ColorRed)
	return list
}

func TestDrawPaintsInOrder(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		size  int
		px    map[[2]int]color.RGBA
	}{
		{"unscaled", 1, 50, map[[2]int]color.RGBA{
			{2, 2}:   {0, 0, 255, 255},
			{15, 15}: {255, 255, 255, 255},
			{25, 25}: {255, 0, 0, 255},
			{35, 35}: {0, 0, 255, 255},
		}},
		{"scaled", 2, 100, map[[2]int]color.RGBA{
			{30, 30}: {255, 255, 255, 255},
			{50, 50}: {255, 0, 0, 255},
			{70, 70}: {0, 0, 255, 255},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dc, err := Draw(testList(), 50, 50, WithScale(tc.scale))
			if err != nil {
				t.Fatalf("Draw() failed: %v", err)
			}
			defer dc.Close()

			img := dc.Image()
			if b := img.Bounds(); b.Dx() != tc.size || b.Dy() != tc.size {
				t.Fatalf("image %v, expected %dx%d", b, tc.size, tc.size)
			}
			for p, want := range tc.px {
				if got := rgbAt(img, p[0], p[1]); !sameRGB(got, want) {
					t.Errorf("pixel %v = %v, expected %v", p, got, want)
				}
			}
		})
	}
}

func TestDrawRejectsEmptyImage(t *testing.T) {
	if _, err := Draw(testList(), 0, 10); err == nil {
		t.Error("zero width should be an error")
	}
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

func TestAbandonJoinsCloseError(t *testing.T) {
	drawErr := errors.New("fill failed")
	closeErr := errors.New("release failed")

	closed := false
	err := abandon(closeFunc(func() error {
		closed = true
		return closeErr
	}), drawErr)
	if !closed {
		t.Fatal("context was not closed")
	}
	if !errors.Is(err, drawErr) || !errors.Is(err, closeErr) {
		t.Errorf("err = %v, expected both the draw and close errors", err)
	}

	if err := abandon(closeFunc(func() error { return nil }), drawErr); err != drawErr {
		t.Errorf("err = %v, expected the draw error unchanged", err)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(testList(), 50, 40, &buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("decoded bounds %v, expected 50x40", b)
	}
}

func TestSnapshotWritesFieldSizedPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.png")
	r := NewRunner(pong.New(), seeded(7), 0)
	if err := Snapshot(r, 30, Script{}, path); err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("not a PNG: %v", err)
	}
	size := pong.New().Size()
	if cfg.Width != int(size.X) || cfg.Height != int(size.Y) {
		t.Errorf("PNG is %dx%d, expected field size %v", cfg.Width, cfg.Height, size)
	}
}
