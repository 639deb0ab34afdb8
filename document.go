package sprite

import (
	"image/color"
	"slices"
)

// Observer receives document notifications. Implementations must be
// comparable and must not mutate the document from inside a callback.
type Observer interface {
	// OnLayerMergedDown is called once per merge operation after every
	// step of the operation has been queued.
	OnLayerMergedDown(src, dst Layer)
}

// Document pairs a sprite with the application state the layer operations
// need: the color used to clear background layers and the observers
// interested in merges.
type Document struct {
	sprite    *Sprite
	bgColor   color.NRGBA
	observers []Observer
}

// NewDocument wraps spr. The background clear color defaults to opaque white.
func NewDocument(spr *Sprite) *Document {
	return &Document{
		sprite:  spr,
		bgColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Sprite returns the document sprite.
func (d *Document) Sprite() *Sprite { return d.sprite }

// BgColor returns the color used to clear background layers.
func (d *Document) BgColor() color.NRGBA { return d.bgColor }

// SetBgColor changes the color used to clear background layers.
func (d *Document) SetBgColor(c color.NRGBA) { d.bgColor = c }

// ColorToClearLayer returns the color that represents "nothing" on l: the
// background color for the background layer, the sprite transparent color
// for every other layer.
func (d *Document) ColorToClearLayer(l Layer) color.NRGBA {
	if l != nil && l.IsBackground() {
		return d.bgColor
	}
	return d.sprite.TransparentColor()
}

// AddObserver registers o for notifications.
func (d *Document) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

// RemoveObserver unregisters o. Unknown observers are ignored.
func (d *Document) RemoveObserver(o Observer) {
	if i := slices.Index(d.observers, o); i >= 0 {
		d.observers = slices.Delete(d.observers, i, i+1)
	}
}

// NotifyLayerMergedDown tells every observer that src was merged into dst.
func (d *Document) NotifyLayerMergedDown(src, dst Layer) {
	Logger().Debug("sprite: layer merged down", "src", src.Name(), "dst", dst.Name())
	for _, o := range slices.Clone(d.observers) {
		o.OnLayerMergedDown(src, dst)
	}
}
