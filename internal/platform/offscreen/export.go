package offscreen

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

type options struct {
	scale float64
}

// Option tunes an export.
type Option func(*options)

// WithScale draws every game pixel as s image pixels.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

func apply(opts []Option) options {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Draw paints list onto a new w x h context in submission order, so
// later quads cover earlier ones. The caller closes the context.
func Draw(list *render.List, w, h int, opts ...Option) (*gg.Context, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("offscreen: bad image size %dx%d", w, h)
	}
	o := apply(opts)
	iw := int(math.Ceil(float64(w) * o.scale))
	ih := int(math.Ceil(float64(h) * o.scale))

	dc := gg.NewContext(iw, ih)
	bg, _ := list.Background()
	dc.ClearWithColor(toRGBA(bg))

	for _, c := range list.Commands() {
		fill := c.Fill()
		dc.SetRGBA(fill.R, fill.G, fill.B, fill.A)
		dc.DrawRectangle(c.X*o.scale, c.Y*o.scale, c.W*o.scale, c.H*o.scale)
		if err := dc.Fill(); err != nil {
			return nil, abandon(dc, fmt.Errorf("offscreen: fill: %w", err))
		}
	}
	return dc, nil
}

// abandon closes a context that failed while drawing and joins both errors.
func abandon(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil {
		return errors.Join(err, fmt.Errorf("offscreen: close: %w", cerr))
	}
	return err
}

func toRGBA(c core.Color) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, c.A)
}

// ExportPNG writes list as a w x h PNG file at path.
func ExportPNG(list *render.List, w, h int, path string, opts ...Option) error {
	dc, err := Draw(list, w, h, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("offscreen: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes list as a w x h PNG to out.
func EncodePNG(list *render.List, w, h int, out io.Writer, opts ...Option) error {
	dc, err := Draw(list, w, h, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(out); err != nil {
		return fmt.Errorf("offscreen: encode: %w", err)
	}
	return nil
}

// Snapshot runs a game and writes its last frame at its own field size.
func Snapshot(r *Runner, frames int, script Script, path string, opts ...Option) error {
	list := r.Run(frames, script)
	size := r.Game().Size()
	return ExportPNG(list, int(size.X), int(size.Y), path, opts...)
}
