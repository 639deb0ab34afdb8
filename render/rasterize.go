// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blend"
)

// Rasterize draws a single cel onto dst with the cel opacity times its
// layer opacity and the layer blend mode, using new blend. The cel image
// lands at cel position + (x, y) in dst coordinates, so passing the negated
// origin of a canvas rectangle draws the cel relative to that rectangle.
// With clear, dst is first filled with the sprite transparent color.
//
// The cel must belong to a layer; group opacity is not applied.
func Rasterize(dst *sprite.Image, cel *sprite.Cel, x, y int, clear bool) {
	layer := cel.Layer()
	if layer == nil {
		panic("render: rasterizing a detached cel")
	}
	if clear {
		dst.Clear(layer.Sprite().TransparentColor())
	}
	if cel.Image() == nil {
		return
	}
	f := blend.Get(effectiveMode(layer), true)
	composite(dst, cel.Image(), cel.Position().Add(image.Pt(x, y)), celOpacity(cel, layer), f)
}

// RasterizeWithCelBounds returns a new image covering exactly the cel
// bounds and holding the cel pixels unchanged. Opacity and blend mode are
// left out: a cel built from the result carries them instead.
func RasterizeWithCelBounds(cel *sprite.Cel) *sprite.Image {
	src := cel.Image()
	dst := sprite.NewImage(src.Spec())
	composite(dst, src, image.Point{}, 255, blend.Normal)
	return dst
}
