package layerops

import (
	"fmt"
	"image/color"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/render"
	"github.com/gogpu/sprite/undo"
)

// flattenTarget is the layer receiving the composite of the selection.
type flattenTarget struct {
	layer   sprite.Layer
	cels    *sprite.ImageLayer
	bg      color.NRGBA // clear color of the scratch canvas
	created bool        // not yet part of the sprite
}

// FlattenLayers composites the selected layers frame by frame into a single
// layer and removes the others, recording every change on tx.
//
// Children of selected groups are flattened through their group. The
// target is the background layer when it is selected and visible, the
// bottom selected layer in merge-down mode, or else a new layer inserted
// above the bottom selected layer. Each frame of the target receives the
// composite cropped to its non-transparent bounds; frames with nothing
// visible end up with no cel.
//
// FlattenLayers returns the target layer, or nil when the selection is
// empty, in which case tx is left untouched. It panics in merge-down mode
// when the bottom selected layer cannot hold cels.
func FlattenLayers(tx *undo.Transaction, doc *sprite.Document, sel *sprite.SelectedLayers, opts ...Option) sprite.Layer {
	o := applyOptions(opts)
	spr := doc.Sprite()

	layers := sel.Clone()
	layers.RemoveChildrenIfParentIsSelected()
	list := layers.ToBrowsableLayerList(spr)
	if len(list) == 0 {
		sprite.Logger().Debug("layerops: flatten of an empty selection")
		return nil
	}

	backgroundIsSel := false
	for _, l := range list {
		if l.IsBackground() {
			backgroundIsSel = true
			break
		}
	}

	t := chooseTarget(doc, list, backgroundIsSel, &o)
	sprite.Logger().Debug("layerops: flatten",
		"layers", len(list), "target", t.layer.Name(), "new", t.created, "mergeDown", o.mergeDown)

	scratch := o.pool.Get(spr.Spec())
	defer o.pool.Put(scratch)

	r := render.NewRenderer()
	r.SetNewBlend(o.newBlend)
	r.SetBgOptions(render.BgNone())

	func() {
		var restore sprite.RestoreVisibleLayers
		restore.ShowSelectedLayers(spr, layers)
		defer restore.Restore()

		for frame := 0; frame < spr.TotalFrames(); frame++ {
			scratch.Clear(t.bg)
			r.RenderSprite(scratch, spr, frame)
			flattenFrame(tx, spr, t, scratch, frame, len(list), backgroundIsSel)
		}
	}()

	if o.mergeDown {
		doc.NotifyLayerMergedDown(list[len(list)-1], t.layer)
	}

	if t.created {
		tx.Execute(undo.NewAddLayer(list[0].Parent(), t.layer, list[0]))
	} else {
		tx.Execute(undo.NewSetLayerOpacity(t.layer, 255))
		tx.Execute(undo.NewSetLayerBlendMode(t.layer, sprite.BlendNormal))
	}

	for _, l := range list {
		if l != t.layer {
			tx.Execute(undo.NewRemoveLayer(l))
		}
	}

	sprite.Logger().Info("layerops: flattened layers",
		"layers", len(list), "target", t.layer.Name(), "frames", spr.TotalFrames())
	return t.layer
}

func chooseTarget(doc *sprite.Document, list []sprite.Layer, backgroundIsSel bool, o *options) flattenTarget {
	spr := doc.Sprite()

	if bg := spr.BackgroundLayer(); backgroundIsSel && bg != nil && bg.IsVisible() {
		return flattenTarget{layer: bg, cels: bg, bg: doc.ColorToClearLayer(bg)}
	}

	if o.mergeDown {
		cels := sprite.AsImageLayer(list[0])
		if cels == nil {
			panic(fmt.Sprintf("layerops: cannot merge down into group %q", list[0].Name()))
		}
		return flattenTarget{layer: list[0], cels: cels, bg: spr.TransparentColor()}
	}

	l := sprite.NewImageLayer(spr)
	l.SetName(o.newLayerName())
	return flattenTarget{layer: l, cels: l, bg: spr.TransparentColor(), created: true}
}

// flattenFrame stores the composite held by scratch into the target cel at
// frame.
func flattenFrame(tx *undo.Transaction, spr *sprite.Sprite, t flattenTarget, scratch *sprite.Image, frame, n int, backgroundIsSel bool) {
	cel := t.cels.Cel(frame)

	bounds, ok := scratch.ShrinkBounds(scratch.MaskColor())
	if !ok {
		sprite.Logger().Debug("layerops: empty frame", "frame", frame, "removeCel", !t.created && cel != nil)
		if !t.created && cel != nil {
			tx.Execute(undo.NewRemoveCel(cel))
		}
		return
	}

	img := scratch.Crop(bounds, scratch.MaskColor())

	if cel == nil {
		cel = sprite.NewCel(frame, img)
		cel.SetPosition(bounds.Min)
		// A new layer is not in the sprite yet; adding it undoes as a whole.
		if t.created {
			t.cels.AddCel(cel)
		} else {
			tx.Execute(undo.NewAddCel(t.layer, cel))
		}
		return
	}

	if cel.Links() > 0 {
		tx.Execute(undo.NewUnlinkCel(cel))
	}
	old := cel.Image()

	if !t.created {
		tx.Execute(undo.NewSetCelOpacity(cel, 255))
		tx.Execute(undo.NewSetCelPosition(cel, bounds.Min))
	}

	// The other selected layers are about to be removed, so a positive
	// z-index would now reach that many layers higher.
	if !backgroundIsSel && cel.ZIndex() > 0 {
		tx.Execute(undo.NewSetCelZIndex(cel, cel.ZIndex()-(n-1)))
	}

	tx.Execute(undo.NewReplaceImage(spr, old, img))
	sprite.Logger().Debug("layerops: frame flattened", "frame", frame, "bounds", bounds)
}
