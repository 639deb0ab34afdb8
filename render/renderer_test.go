// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sprite"
)

func newCanvas(spr *sprite.Sprite) *sprite.Image {
	img := sprite.NewImage(spr.Spec())
	img.Clear(spr.TransparentColor())
	return img
}

func TestRenderSpriteHalfBlueOverRed(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(4, 4), 1)
	addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), red)
	b := addSolidLayer(spr, spr.Root(), "b", spr.Bounds(), blue)
	b.SetOpacity(128)

	for _, newBlend := range []bool{false, true} {
		r := NewRenderer()
		r.SetNewBlend(newBlend)
		canvas := newCanvas(spr)
		r.RenderSprite(canvas, spr, 0)

		want := color.NRGBA{R: 127, G: 0, B: 128, A: 255}
		if got := canvas.Pixel(2, 2); got != want {
			t.Errorf("newBlend=%v Pixel = %v, want %v", newBlend, got, want)
		}
	}
}

func TestRenderSpriteCelPosition(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(4, 4), 1)
	addSolidLayer(spr, spr.Root(), "a", image.Rect(1, 2, 3, 5), green)

	canvas := newCanvas(spr)
	NewRenderer().RenderSprite(canvas, spr, 0)

	got, ok := canvas.ShrinkBounds(spr.TransparentColor())
	if !ok || got != image.Rect(1, 2, 3, 4) {
		t.Errorf("painted area = %v, %v, want %v (clipped to canvas)", got, ok, image.Rect(1, 2, 3, 4))
	}
}

func TestRenderSpriteSkipsHiddenLayers(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(2, 2), 1)
	addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), red)
	b := addSolidLayer(spr, spr.Root(), "b", spr.Bounds(), blue)
	b.SetVisible(false)

	canvas := newCanvas(spr)
	NewRenderer().RenderSprite(canvas, spr, 0)
	if got := canvas.Pixel(0, 0); got != red {
		t.Errorf("Pixel = %v, want %v", got, red)
	}
}

func TestRenderSpriteZIndexOverridesStacking(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(2, 2), 1)
	a := addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), red)
	addSolidLayer(spr, spr.Root(), "b", spr.Bounds(), blue)
	a.Cel(0).SetZIndex(1)

	canvas := newCanvas(spr)
	NewRenderer().RenderSprite(canvas, spr, 0)
	if got := canvas.Pixel(0, 0); got != red {
		t.Errorf("Pixel = %v, want %v (a raised above b)", got, red)
	}
}

func TestRenderSpriteGroupOpacity(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(2, 2), 1)
	addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), red)
	g := sprite.NewGroupLayer(spr)
	g.SetOpacity(128)
	spr.Root().AddLayer(g)
	addSolidLayer(spr, g, "g1", spr.Bounds(), blue)

	canvas := newCanvas(spr)
	NewRenderer().RenderSprite(canvas, spr, 0)
	want := color.NRGBA{R: 127, G: 0, B: 128, A: 255}
	if got := canvas.Pixel(0, 0); got != want {
		t.Errorf("Pixel = %v, want %v", got, want)
	}
}

func TestRenderSpriteBackgroundIsNormal(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(2, 2), 1)
	bg := addSolidLayer(spr, spr.Root(), "bg", spr.Bounds(), red)
	bg.SetBackground(true)
	bg.SetBlendMode(sprite.BlendMultiply)

	canvas := sprite.NewImage(spr.Spec())
	canvas.Clear(blue)
	NewRenderer().RenderSprite(canvas, spr, 0)
	if got := canvas.Pixel(1, 1); got != red {
		t.Errorf("Pixel = %v, want %v", got, red)
	}
}

func TestRenderSpriteBlendModes(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(1, 1), 1)
	addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	top := addSolidLayer(spr, spr.Root(), "b", spr.Bounds(), color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	top.SetBlendMode(sprite.BlendMultiply)

	canvas := newCanvas(spr)
	NewRenderer().RenderSprite(canvas, spr, 0)
	want := color.NRGBA{R: 78, G: 78, B: 78, A: 255}
	if got := canvas.Pixel(0, 0); got != want {
		t.Errorf("multiply Pixel = %v, want %v", got, want)
	}
}

func TestRenderSpriteNewBlendOnTransparent(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(1, 1), 1)
	l := addSolidLayer(spr, spr.Root(), "a", spr.Bounds(), color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	l.SetBlendMode(sprite.BlendDifference)

	for _, newBlend := range []bool{true, false} {
		r := NewRenderer()
		r.SetNewBlend(newBlend)
		canvas := newCanvas(spr)
		r.RenderSprite(canvas, spr, 0)
		if got, want := canvas.Pixel(0, 0), (color.NRGBA{R: 100, G: 150, B: 200, A: 255}); got != want {
			t.Errorf("newBlend=%v Pixel = %v, want %v", newBlend, got, want)
		}
	}
}

func TestRenderSpriteCheckedBackground(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(4, 4), 1)
	light := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.NRGBA{R: 100, G: 100, B: 100, A: 255}

	r := NewRenderer()
	r.SetBgOptions(BgChecked(2, light, dark))
	canvas := newCanvas(spr)
	r.RenderSprite(canvas, spr, 0)

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, light}, {1, 1, light}, {2, 0, dark}, {0, 2, dark}, {3, 3, light},
	}
	for _, tt := range tests {
		if got := canvas.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderSpriteBgNoneKeepsDestination(t *testing.T) {
	spr := sprite.New(sprite.NewImageSpec(2, 2), 1)
	canvas := sprite.NewImage(spr.Spec())
	canvas.Clear(green)

	r := NewRenderer()
	r.SetBgOptions(BgNone())
	r.RenderSprite(canvas, spr, 0)
	if got := canvas.Pixel(0, 0); got != green {
		t.Errorf("Pixel = %v, want %v", got, green)
	}
}
