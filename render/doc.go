// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render composites the layers of a sprite into an image.
//
// # Key Principle
//
// Rendering never mutates the sprite. The caller owns the destination
// image, decides what it holds before rendering (Renderer only paints the
// optional checkerboard) and decides which layers take part by toggling
// their visibility, typically through sprite.RestoreVisibleLayers.
//
// # Paint Order
//
// Every layer visited in stacking order, bottom to top, gets the next
// order number; children of a hidden group are skipped entirely. A cel is
// painted at order = layer order + cel z-index, ties broken by z-index and
// then by stacking order. A cel with z-index +1 therefore lands right above
// the next layer.
//
// # Blending
//
// A cel is drawn with opacity cel × layer × enclosing groups, using its
// layer blend mode (Normal for the background layer). SetNewBlend selects
// between the plain blenders and the backdrop-aware ones that fade into
// normal compositing over transparent pixels; new blend is the default.
//
// # Usage
//
//	r := render.NewRenderer()
//	r.SetBgOptions(render.BgNone())
//
//	canvas := sprite.NewImage(spr.Spec())
//	canvas.Clear(spr.TransparentColor())
//	r.RenderSprite(canvas, spr, frame)
//
// Thread Safety: a Renderer may be shared between goroutines as long as
// they render sprites that nobody mutates.
package render
