// Package spritetest provides helpers for tests that compare sprite states.
package spritetest

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"strings"

	"github.com/gogpu/sprite"
)

// Snapshot renders the full state of spr as text: layer tree, layer
// properties, cels with frame, position, opacity, z-index, link structure,
// image identity and pixel checksum. Two snapshots are equal exactly when
// the sprites are indistinguishable through the sprite API.
func Snapshot(spr *sprite.Sprite) string {
	var sb strings.Builder
	data := make(map[*sprite.CelData]int)
	writeGroup(&sb, spr.Root(), 0, data)
	return sb.String()
}

func writeGroup(sb *strings.Builder, g *sprite.GroupLayer, depth int, data map[*sprite.CelData]int) {
	for _, l := range g.Layers() {
		fmt.Fprintf(sb, "%slayer id=%d name=%q flags=%d opacity=%d blend=%s\n",
			strings.Repeat("  ", depth), l.ID(), l.Name(), l.Flags(), l.Opacity(), l.BlendMode())
		if sub, ok := l.(*sprite.GroupLayer); ok {
			writeGroup(sb, sub, depth+1, data)
			continue
		}
		il := sprite.AsImageLayer(l)
		for _, c := range il.Cels() {
			d, ok := data[c.Data()]
			if !ok {
				d = len(data)
				data[c.Data()] = d
			}
			fmt.Fprintf(sb, "%s  cel id=%d frame=%d pos=%v opacity=%d z=%d data=%d image=%d pixels=%s\n",
				strings.Repeat("  ", depth), c.ID(), c.Frame(), c.Position(), c.Opacity(), c.ZIndex(),
				d, c.Image().ID(), Checksum(c.Image()))
		}
	}
}

// Checksum returns the size and a hash of the pixels of img.
func Checksum(img *sprite.Image) string {
	h := fnv.New64a()
	h.Write(img.NRGBA().Pix)
	return fmt.Sprintf("%dx%d:%016x", img.Width(), img.Height(), h.Sum64())
}

// SolidImage returns a w×h image filled with c.
func SolidImage(w, h int, c color.NRGBA) *sprite.Image {
	img := sprite.NewImageSize(w, h)
	img.Clear(c)
	return img
}

// AddLayer appends a named image layer to parent.
func AddLayer(spr *sprite.Sprite, parent *sprite.GroupLayer, name string) *sprite.ImageLayer {
	l := sprite.NewImageLayer(spr)
	l.SetName(name)
	parent.AddLayer(l)
	return l
}

// AddCel attaches to l a cel at frame covering r filled with c.
func AddCel(l *sprite.ImageLayer, frame int, r image.Rectangle, c color.NRGBA) *sprite.Cel {
	cel := sprite.NewCel(frame, SolidImage(r.Dx(), r.Dy(), c))
	cel.SetPosition(r.Min)
	l.AddCel(cel)
	return cel
}

// Composite renders frame of spr onto a transparent canvas.
func Composite(spr *sprite.Sprite, frame int, render func(dst *sprite.Image, spr *sprite.Sprite, frame int)) *sprite.Image {
	canvas := sprite.NewImage(spr.Spec())
	canvas.Clear(spr.TransparentColor())
	render(canvas, spr, frame)
	return canvas
}
