package layerops

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/spritetest"
	"github.com/gogpu/sprite/render"
)

var (
	red         = color.NRGBA{R: 255, A: 255}
	green       = color.NRGBA{G: 255, A: 255}
	blue        = color.NRGBA{B: 255, A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	halfGreen   = color.NRGBA{G: 255, A: 128}
	transparent = color.NRGBA{}
)

func newDoc(w, h, frames int) (*sprite.Document, *sprite.Sprite) {
	spr := sprite.New(sprite.NewImageSpec(w, h), frames)
	return sprite.NewDocument(spr), spr
}

// composite renders frame of spr onto a transparent canvas.
func composite(spr *sprite.Sprite, frame int, newBlend bool) *sprite.Image {
	r := render.NewRenderer()
	r.SetNewBlend(newBlend)
	return spritetest.Composite(spr, frame, r.RenderSprite)
}

// compositeAll renders every frame of spr.
func compositeAll(spr *sprite.Sprite, newBlend bool) []*sprite.Image {
	frames := make([]*sprite.Image, spr.TotalFrames())
	for i := range frames {
		frames[i] = composite(spr, i, newBlend)
	}
	return frames
}

// checkVisiblyEqual fails if got and want differ in a pixel where at least
// one of them is not fully transparent.
func checkVisiblyEqual(t *testing.T, frame int, got, want *sprite.Image) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("frame %d: bounds %v, want %v", frame, got.Bounds(), want.Bounds())
	}
	b := got.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g, w := got.Pixel(x, y), want.Pixel(x, y)
			if g.A == 0 && w.A == 0 {
				continue
			}
			if g != w {
				t.Fatalf("frame %d: pixel %v = %v, want %v", frame, image.Pt(x, y), g, w)
			}
		}
	}
}

func layerNames(g *sprite.GroupLayer) []string {
	var names []string
	for _, l := range g.Layers() {
		names = append(names, l.Name())
	}
	return names
}

func checkNames(t *testing.T, g *sprite.GroupLayer, want ...string) {
	t.Helper()
	got := layerNames(g)
	if len(got) != len(want) {
		t.Fatalf("layers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("layers = %v, want %v", got, want)
		}
	}
}

type merge struct {
	src, dst sprite.Layer
}

// mergeRecorder collects merge notifications.
type mergeRecorder struct {
	calls []merge
}

func (r *mergeRecorder) OnLayerMergedDown(src, dst sprite.Layer) {
	r.calls = append(r.calls, merge{src: src, dst: dst})
}
