package sprite

import (
	"fmt"
	"image"
	"image/color"
)

// Sprite is a multi-frame document: a canvas spec, a frame count and a tree
// of layers rooted at an unnamed group.
type Sprite struct {
	spec   ImageSpec
	frames int
	root   *GroupLayer
}

// New creates an empty sprite. It panics if the spec is invalid or if
// frames is less than one.
func New(spec ImageSpec, frames int) *Sprite {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	if frames < 1 {
		panic(fmt.Sprintf("sprite: invalid frame count %d", frames))
	}
	s := &Sprite{spec: spec, frames: frames}
	s.root = NewGroupLayer(s)
	return s
}

// Spec returns the canvas spec.
func (s *Sprite) Spec() ImageSpec { return s.spec }

// Width returns the canvas width.
func (s *Sprite) Width() int { return s.spec.Width }

// Height returns the canvas height.
func (s *Sprite) Height() int { return s.spec.Height }

// Bounds returns the canvas rectangle.
func (s *Sprite) Bounds() image.Rectangle { return s.spec.Bounds() }

// TotalFrames returns the number of frames.
func (s *Sprite) TotalFrames() int { return s.frames }

// SetTotalFrames changes the number of frames. Cels past the new end are
// kept but never rendered.
func (s *Sprite) SetTotalFrames(frames int) {
	if frames < 1 {
		panic(fmt.Sprintf("sprite: invalid frame count %d", frames))
	}
	s.frames = frames
}

// Root returns the group holding the top-level layers.
func (s *Sprite) Root() *GroupLayer { return s.root }

// TransparentColor returns the color that marks empty pixels.
func (s *Sprite) TransparentColor() color.NRGBA { return s.spec.MaskColor }

// BackgroundLayer returns the background layer, or nil if the sprite has
// none. Only the bottom top-level layer can be the background.
func (s *Sprite) BackgroundLayer() *ImageLayer {
	if len(s.root.layers) == 0 {
		return nil
	}
	l, ok := s.root.layers[0].(*ImageLayer)
	if !ok || !l.IsBackground() {
		return nil
	}
	return l
}

// AllLayers returns every layer of the sprite, bottom to top, each group
// right before its children.
func (s *Sprite) AllLayers() []Layer {
	return s.root.AllLayers()
}

// LayerByID finds an attached layer by identifier.
func (s *Sprite) LayerByID(id ObjectID) Layer {
	for _, l := range s.root.AllLayers() {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

// LayerByName finds the first attached layer with the given name, in
// browsable order.
func (s *Sprite) LayerByName(name string) Layer {
	for _, l := range s.root.AllLayers() {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

// ReplaceImage points every cel showing the image identified by oldID at img
// instead. It returns the number of cel data objects updated.
func (s *Sprite) ReplaceImage(oldID ObjectID, img *Image) int {
	seen := make(map[*CelData]bool)
	for _, l := range s.root.AllLayers() {
		il := AsImageLayer(l)
		if il == nil {
			continue
		}
		for _, c := range il.cels {
			if seen[c.data] || c.data.image == nil || c.data.image.id != oldID {
				continue
			}
			seen[c.data] = true
			c.data.image = img
		}
	}
	return len(seen)
}

// AsImageLayer returns the pixel storage of l: the layer itself for an
// image layer, the embedded image layer for a tilemap, nil for a group.
func AsImageLayer(l Layer) *ImageLayer {
	switch v := l.(type) {
	case *ImageLayer:
		return v
	case *TilemapLayer:
		return &v.ImageLayer
	}
	return nil
}
