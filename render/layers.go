// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"slices"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blend"
)

// planItem is one cel to paint, with the opacity inherited from its
// enclosing groups.
type planItem struct {
	order        int
	zIndex       int
	layer        sprite.Layer
	cel          *sprite.Cel
	groupOpacity int
}

// renderPlan lists the cels of one frame in paint order.
type renderPlan struct {
	items []planItem
	order int
}

// newRenderPlan collects the visible cels of spr at frame and sorts them
// in ascending paint order.
func newRenderPlan(spr *sprite.Sprite, frame int) *renderPlan {
	p := &renderPlan{}
	for _, l := range spr.Root().Layers() {
		p.addLayer(l, frame, 255)
	}
	// Stable: equal order and z-index keep the stacking order.
	slices.SortStableFunc(p.items, func(a, b planItem) int {
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		return cmp.Compare(a.zIndex, b.zIndex)
	})
	return p
}

func (p *renderPlan) addLayer(l sprite.Layer, frame, groupOpacity int) {
	p.order++
	if !l.IsVisible() {
		return
	}

	if g, ok := l.(*sprite.GroupLayer); ok {
		opacity := blend.MulUn8(groupOpacity, int(g.Opacity()))
		for _, child := range g.Layers() {
			p.addLayer(child, frame, opacity)
		}
		return
	}

	il := sprite.AsImageLayer(l)
	if il == nil {
		return
	}
	cel := il.Cel(frame)
	if cel == nil || cel.Image() == nil {
		return
	}
	p.items = append(p.items, planItem{
		order:        p.order + cel.ZIndex(),
		zIndex:       cel.ZIndex(),
		layer:        l,
		cel:          cel,
		groupOpacity: groupOpacity,
	})
}

// Layers returns the layers with a cel painted at frame, in paint order.
// A layer appears once per frame at most.
func Layers(spr *sprite.Sprite, frame int) []sprite.Layer {
	plan := newRenderPlan(spr, frame)
	layers := make([]sprite.Layer, len(plan.items))
	for i, it := range plan.items {
		layers[i] = it.layer
	}
	return layers
}
