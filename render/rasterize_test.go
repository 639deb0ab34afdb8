// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sprite"
)

func TestRasterizeOffset(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(8, 8), 1)
	l := addSolidLayer(spr, spr.Root(), "a", image.Rect(3, 4, 5, 6), red)

	// Draw relative to a rectangle whose origin is (2, 2).
	dst := sprite.NewImageSize(4, 4)
	Rasterize(dst, l.Cel(0), -2, -2, false)

	got, ok := dst.ShrinkBounds(color.NRGBA{})
	if want := image.Rect(1, 2, 3, 4); !ok || got != want {
		t.Errorf("painted area = %v, want %v", got, want)
	}
}

func TestRasterizeOpacityAndBlend(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(2, 2), 1)
	l := addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), blue)
	l.SetOpacity(128)

	dst := sprite.NewImageSize(2, 2)
	dst.Clear(red)
	Rasterize(dst, l.Cel(0), 0, 0, false)
	want := color.NRGBA{R: 127, G: 0, B: 128, A: 255}
	if got := dst.Pixel(0, 0); got != want {
		t.Errorf("Pixel = %v, want %v", got, want)
	}

	Rasterize(dst, l.Cel(0), 0, 0, true)
	want = color.NRGBA{B: 255, A: 128}
	if got := dst.Pixel(0, 0); got != want {
		t.Errorf("after clear Pixel = %v, want %v", got, want)
	}
}

func TestRasterizeDetachedCelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Rasterize of a detached cel did not panic")
		}
	}()
	Rasterize(sprite.NewImageSize(1, 1), sprite.NewCel(0, sprite.NewImageSize(1, 1)), 0, 0, false)
}

func TestRasterizeWithCelBounds(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(8, 8), 1)
	l := addSolidLayer(spr, spr.Root(), "a", image.Rect(2, 2, 5, 4), color.NRGBA{R: 9, G: 8, B: 7, A: 100})
	l.SetOpacity(10)
	cel := l.Cel(0)
	cel.SetOpacity(20)
	cel.Image().SetPixel(0, 0, color.NRGBA{R: 1})

	got := RasterizeWithCelBounds(cel)
	if got == cel.Image() {
		t.Fatal("RasterizeWithCelBounds returned the cel image itself")
	}
	if !got.Equal(cel.Image()) {
		t.Error("RasterizeWithCelBounds changed pixels")
	}
}
