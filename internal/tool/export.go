package tool

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/parallel"
	"github.com/gogpu/sprite/render"
)

// FrameName returns the file name of an exported frame.
func FrameName(frame int) string {
	return fmt.Sprintf("frame-%03d.png", frame)
}

type exportOptions struct {
	dir     string
	scale   int
	workers int
}

// exportFrames renders every frame of spr and writes it to o.dir as PNG,
// scaled up by the integer factor o.scale. Frames are rendered on a pool
// of o.workers goroutines. A frame that cannot be written does not stop
// the others.
func exportFrames(ctx context.Context, log *zap.Logger, spr *sprite.Sprite, r *render.Renderer, o exportOptions) error {
	if err := os.MkdirAll(o.dir, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory '%s': %w", o.dir, err)
	}
	scale := max(o.scale, 1)

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewPool(min(workers, spr.TotalFrames()))
	defer pool.Close()

	// one canvas per worker
	canvases := make([]*sprite.Image, pool.Workers())
	for i := range canvases {
		canvases[i] = sprite.NewImage(spr.Spec())
	}

	err := pool.Run(ctx, spr.TotalFrames(), func(worker, frame int) error {
		canvas := canvases[worker]
		canvas.Clear(spr.TransparentColor())
		r.RenderSprite(canvas, spr, frame)

		var out image.Image = canvas.NRGBA()
		if scale > 1 {
			scaled := image.NewNRGBA(image.Rect(0, 0, spr.Width()*scale, spr.Height()*scale))
			xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas.NRGBA(), canvas.Bounds(), xdraw.Src, nil)
			out = scaled
		}

		name := filepath.Join(o.dir, FrameName(frame))
		if err := imaging.Save(out, name); err != nil {
			return fmt.Errorf("unable to save frame %d: %w", frame, err)
		}
		log.Debug("Frame written", zap.Int("frame", frame), zap.Int("worker", worker), zap.String("file", name))
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Frames exported", zap.Int("frames", spr.TotalFrames()), zap.String("destination", o.dir),
		zap.Int("scale", scale), zap.Int("workers", pool.Workers()))
	return nil
}
