// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blend"
)

// BgType selects what Renderer paints under the sprite.
type BgType uint8

const (
	// BgTypeNone leaves the destination untouched.
	BgTypeNone BgType = iota
	// BgTypeChecked paints a two-color checkerboard.
	BgTypeChecked
)

// BgOptions describes the background painted before the layers.
type BgOptions struct {
	Type   BgType
	Size   int // checker cell size in pixels
	Color1 color.NRGBA
	Color2 color.NRGBA
}

// BgNone returns options that paint no background.
func BgNone() BgOptions {
	return BgOptions{Type: BgTypeNone}
}

// BgChecked returns options that paint a checkerboard of size-pixel cells
// alternating c1 and c2, starting with c1 at the origin.
func BgChecked(size int, c1, c2 color.NRGBA) BgOptions {
	if size < 1 {
		size = 1
	}
	return BgOptions{Type: BgTypeChecked, Size: size, Color1: c1, Color2: c2}
}

func (o BgOptions) paint(dst *sprite.Image) {
	if o.Type != BgTypeChecked {
		return
	}
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += o.Size {
		for x := b.Min.X; x < b.Max.X; x += o.Size {
			c := o.Color1
			if ((x/o.Size)+(y/o.Size))%2 != 0 {
				c = o.Color2
			}
			dst.Fill(image.Rect(x, y, x+o.Size, y+o.Size), c)
		}
	}
}

// Renderer composites sprite frames into images.
//
// The zero value is not ready for use; create renderers with NewRenderer.
type Renderer struct {
	newBlend bool
	bg       BgOptions
}

// NewRenderer returns a renderer using new blend and no background.
func NewRenderer() *Renderer {
	return &Renderer{newBlend: true, bg: BgNone()}
}

// SetNewBlend selects the backdrop-aware blenders (true) or the legacy
// ones (false).
func (r *Renderer) SetNewBlend(on bool) {
	r.newBlend = on
}

// NewBlend reports whether the backdrop-aware blenders are in use.
func (r *Renderer) NewBlend() bool {
	return r.newBlend
}

// SetBgOptions sets what is painted before the layers.
func (r *Renderer) SetBgOptions(o BgOptions) {
	r.bg = o
}

// RenderSprite composites every visible cel of spr at frame onto dst.
// dst is in canvas coordinates: its origin is the canvas origin.
func (r *Renderer) RenderSprite(dst *sprite.Image, spr *sprite.Sprite, frame int) {
	r.bg.paint(dst)

	plan := newRenderPlan(spr, frame)
	sprite.Logger().Debug("render: frame", "frame", frame, "cels", len(plan.items), "newBlend", r.newBlend)

	for _, it := range plan.items {
		opacity := blend.MulUn8(celOpacity(it.cel, it.layer), it.groupOpacity)
		f := blend.Get(effectiveMode(it.layer), r.newBlend)
		composite(dst, it.cel.Image(), it.cel.Position(), opacity, f)
	}
}

// celOpacity returns cel opacity × layer opacity.
func celOpacity(cel *sprite.Cel, layer sprite.Layer) int {
	return blend.MulUn8(int(cel.Opacity()), int(layer.Opacity()))
}

// effectiveMode returns the blend mode cels of layer are drawn with.
func effectiveMode(layer sprite.Layer) sprite.BlendMode {
	if layer.IsBackground() {
		return sprite.BlendNormal
	}
	return layer.BlendMode()
}

// composite draws src with its top-left corner at dst coordinates at.
func composite(dst, src *sprite.Image, at image.Point, opacity int, f blend.Func) {
	r := src.Bounds().Add(at).Intersect(dst.Bounds())
	if r.Empty() || opacity == 0 {
		return
	}
	d := dst.NRGBA()
	s := src.NRGBA()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := d.PixOffset(r.Min.X, y)
		si := s.PixOffset(r.Min.X-at.X, y-at.Y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sc := color.NRGBA{R: s.Pix[si], G: s.Pix[si+1], B: s.Pix[si+2], A: s.Pix[si+3]}
			bc := color.NRGBA{R: d.Pix[di], G: d.Pix[di+1], B: d.Pix[di+2], A: d.Pix[di+3]}
			rc := f(bc, sc, opacity)
			d.Pix[di], d.Pix[di+1], d.Pix[di+2], d.Pix[di+3] = rc.R, rc.G, rc.B, rc.A
			di += 4
			si += 4
		}
	}
}
