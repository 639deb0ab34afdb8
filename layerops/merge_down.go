package layerops

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blend"
	"github.com/gogpu/sprite/render"
	"github.com/gogpu/sprite/undo"
)

// ErrCannotMergeDown is returned by MergeDownLayer when CanMergeDown
// rejects the layer.
var ErrCannotMergeDown = errors.New("layerops: layer cannot be merged down")

// CanMergeDown reports whether top is a plain image layer sitting right
// above another plain image layer. Groups and tilemaps are not merged.
func CanMergeDown(top sprite.Layer) bool {
	if top == nil || !top.IsImage() || top.IsTilemap() {
		return false
	}
	bottom := top.Previous()
	return bottom != nil && bottom.IsImage() && !bottom.IsTilemap()
}

// MergeDownLayer merges top into the layer right below it, frame by frame,
// and removes top. Every change is recorded on tx.
//
// The cel of the bottom layer is always the one modified. When it has a
// higher z-index than the cel of top, it is painted over that cel instead
// of under it, as the compositor would.
func MergeDownLayer(tx *undo.Transaction, doc *sprite.Document, top sprite.Layer) error {
	if !CanMergeDown(top) {
		name := "<nil>"
		if top != nil {
			name = top.Name()
		}
		return fmt.Errorf("%w: %q", ErrCannotMergeDown, name)
	}
	bottom := top.Previous()

	spr := doc.Sprite()
	for frame := 0; frame < spr.TotalFrames(); frame++ {
		mergeDownFrame(tx, doc, top, bottom, frame)
	}

	doc.NotifyLayerMergedDown(top, bottom)
	tx.Execute(undo.NewRemoveLayer(top))

	sprite.Logger().Info("layerops: merged down",
		"src", top.Name(), "dst", bottom.Name(), "frames", spr.TotalFrames())
	return nil
}

func mergeDownFrame(tx *undo.Transaction, doc *sprite.Document, top, bottom sprite.Layer, frame int) {
	spr := doc.Sprite()

	srcLayer, dstLayer := top, bottom
	srcCel := sprite.AsImageLayer(top).Cel(frame)
	dstCel := sprite.AsImageLayer(bottom).Cel(frame)
	bottomCel := dstCel

	// Equal z-indexes keep the layer order.
	if bottomCel != nil && srcCel != nil && bottomCel.ZIndex() > srcCel.ZIndex() {
		srcLayer, dstLayer = dstLayer, srcLayer
		srcCel, dstCel = dstCel, srcCel
	}

	if srcCel == nil || srcCel.Image() == nil {
		return
	}
	var dstImage *sprite.Image
	if dstCel != nil {
		dstImage = dstCel.Image()
	}
	if srcCel == bottomCel && dstImage == nil {
		return
	}

	opacity := blend.MulUn8(int(srcCel.Opacity()), int(srcLayer.Opacity()))

	if dstImage == nil {
		cel := sprite.NewCel(frame, render.RasterizeWithCelBounds(srcCel))
		cel.SetPosition(srcCel.Position())
		cel.SetOpacity(uint8(opacity))
		tx.Execute(undo.NewAddCel(dstLayer, cel))
		sprite.Logger().Debug("layerops: cel copied down", "frame", frame, "bounds", srcCel.Bounds())
		return
	}

	var bounds image.Rectangle
	if dstLayer.IsBackground() {
		bounds = spr.Bounds()
	} else {
		bounds = srcCel.Bounds().Union(dstCel.Bounds())
	}

	merged := dstImage.Crop(bounds.Sub(dstCel.Position()), doc.ColorToClearLayer(dstLayer))
	render.Rasterize(merged, srcCel, -bounds.Min.X, -bounds.Min.Y, false)

	dstOpacity := dstCel.Opacity()
	if bottomCel.Links() > 0 {
		tx.Execute(undo.NewUnlinkCel(bottomCel))
	}
	tx.Execute(undo.NewSetCelPosition(bottomCel, bounds.Min))
	tx.Execute(undo.NewSetCelOpacity(bottomCel, dstOpacity))
	tx.Execute(undo.NewReplaceImage(spr, bottomCel.Image(), merged))

	sprite.Logger().Debug("layerops: cels merged",
		"frame", frame, "bounds", bounds, "swapped", srcCel == bottomCel)
}
