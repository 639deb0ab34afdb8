package sprite

import (
	"fmt"
	"slices"
)

// LayerFlags holds the boolean properties of a layer.
type LayerFlags uint8

const (
	LayerVisible    LayerFlags = 1 << iota // 1
	LayerEditable                          // 2
	LayerBackground                        // 4
)

const defaultLayerFlags = LayerVisible | LayerEditable

// Layer is implemented by every layer variant of a sprite: *ImageLayer,
// *TilemapLayer and *GroupLayer.
//
// The capability predicates mirror the variant: a tilemap layer reports
// both IsImage and IsTilemap, so code that only handles plain pixel layers
// has to check both.
type Layer interface {
	ID() ObjectID
	Name() string
	SetName(name string)
	Flags() LayerFlags

	IsVisible() bool
	SetVisible(visible bool)
	IsBackground() bool

	IsImage() bool
	IsGroup() bool
	IsTilemap() bool

	Opacity() uint8
	SetOpacity(opacity uint8)
	BlendMode() BlendMode
	SetBlendMode(mode BlendMode)

	Sprite() *Sprite
	Parent() *GroupLayer
	Previous() Layer
	Next() Layer

	base() *layerBase
}

// layerBase carries the state shared by all layer variants.
type layerBase struct {
	id        ObjectID
	name      string
	flags     LayerFlags
	opacity   uint8
	blendMode BlendMode
	sprite    *Sprite
	parent    *GroupLayer
	self      Layer
}

func (l *layerBase) init(spr *Sprite, self Layer) {
	l.id = newObjectID()
	l.flags = defaultLayerFlags
	l.opacity = 255
	l.sprite = spr
	l.self = self
}

func (l *layerBase) base() *layerBase { return l }

// ID returns the unique identifier of the layer.
func (l *layerBase) ID() ObjectID { return l.id }

// Name returns the layer name.
func (l *layerBase) Name() string { return l.name }

// SetName renames the layer.
func (l *layerBase) SetName(name string) { l.name = name }

// Flags returns the raw layer flags.
func (l *layerBase) Flags() LayerFlags { return l.flags }

// IsVisible reports whether the layer is shown.
func (l *layerBase) IsVisible() bool { return l.flags&LayerVisible != 0 }

// SetVisible shows or hides the layer.
func (l *layerBase) SetVisible(visible bool) { l.setFlag(LayerVisible, visible) }

// IsBackground reports whether this is the sprite's background layer.
func (l *layerBase) IsBackground() bool { return l.flags&LayerBackground != 0 }

func (l *layerBase) setFlag(f LayerFlags, on bool) {
	if on {
		l.flags |= f
	} else {
		l.flags &^= f
	}
}

// Opacity returns the layer opacity, 0-255.
func (l *layerBase) Opacity() uint8 { return l.opacity }

// SetOpacity sets the layer opacity.
func (l *layerBase) SetOpacity(opacity uint8) { l.opacity = opacity }

// BlendMode returns the layer blend mode.
func (l *layerBase) BlendMode() BlendMode { return l.blendMode }

// SetBlendMode sets the layer blend mode.
func (l *layerBase) SetBlendMode(mode BlendMode) { l.blendMode = mode }

// Sprite returns the sprite the layer was created for.
func (l *layerBase) Sprite() *Sprite { return l.sprite }

// Parent returns the group containing the layer, or nil when the layer is
// detached or is the root group.
func (l *layerBase) Parent() *GroupLayer { return l.parent }

// Previous returns the sibling right below the layer, or nil.
func (l *layerBase) Previous() Layer {
	if l.parent == nil {
		return nil
	}
	i := l.parent.indexOf(l)
	if i <= 0 {
		return nil
	}
	return l.parent.layers[i-1]
}

// Next returns the sibling right above the layer, or nil.
func (l *layerBase) Next() Layer {
	if l.parent == nil {
		return nil
	}
	i := l.parent.indexOf(l)
	if i < 0 || i+1 >= len(l.parent.layers) {
		return nil
	}
	return l.parent.layers[i+1]
}

// ImageLayer is a layer of raster cels, one cel at most per frame.
type ImageLayer struct {
	layerBase
	cels []*Cel // sorted by frame
}

// NewImageLayer creates a visible, fully opaque, detached image layer.
// Insert it into a group (directly or through an undo step) to make it part
// of the sprite.
func NewImageLayer(spr *Sprite) *ImageLayer {
	l := &ImageLayer{}
	l.init(spr, l)
	return l
}

func (l *ImageLayer) IsImage() bool   { return true }
func (l *ImageLayer) IsGroup() bool   { return false }
func (l *ImageLayer) IsTilemap() bool { return false }

// SetBackground marks or unmarks the layer as the sprite background.
// A background layer cannot hold transparency, so the caller is
// responsible for keeping its cels opaque and canvas sized.
func (l *ImageLayer) SetBackground(background bool) {
	l.setFlag(LayerBackground, background)
}

// Cel returns the cel at frame, or nil.
func (l *ImageLayer) Cel(frame int) *Cel {
	i, ok := l.celIndex(frame)
	if !ok {
		return nil
	}
	return l.cels[i]
}

// Cels returns the layer cels ordered by frame. The slice is a copy.
func (l *ImageLayer) Cels() []*Cel {
	return slices.Clone(l.cels)
}

// CelCount returns the number of cels in the layer.
func (l *ImageLayer) CelCount() int {
	return len(l.cels)
}

func (l *ImageLayer) celIndex(frame int) (int, bool) {
	return slices.BinarySearchFunc(l.cels, frame, func(c *Cel, f int) int {
		return c.frame - f
	})
}

// AddCel attaches cel to the layer. It panics if the cel already belongs
// to a layer or if the frame is occupied.
func (l *ImageLayer) AddCel(cel *Cel) {
	if cel.layer != nil {
		panic(fmt.Sprintf("sprite: cel %d already belongs to layer %d", cel.id, cel.layer.id))
	}
	i, ok := l.celIndex(cel.frame)
	if ok {
		panic(fmt.Sprintf("sprite: layer %q already has a cel at frame %d", l.name, cel.frame))
	}
	l.cels = slices.Insert(l.cels, i, cel)
	cel.layer = l
}

// RemoveCel detaches cel from the layer. It panics if the cel is not part
// of the layer.
func (l *ImageLayer) RemoveCel(cel *Cel) {
	i, ok := l.celIndex(cel.frame)
	if !ok || l.cels[i] != cel {
		panic(fmt.Sprintf("sprite: cel %d is not part of layer %q", cel.id, l.name))
	}
	l.cels = slices.Delete(l.cels, i, i+1)
	cel.layer = nil
}

// TilemapLayer is an image layer whose cels index tiles of a tileset.
// Flatten and merge-down reject it.
type TilemapLayer struct {
	ImageLayer
	tileset int
}

// NewTilemapLayer creates a detached tilemap layer bound to a tileset index.
func NewTilemapLayer(spr *Sprite, tileset int) *TilemapLayer {
	l := &TilemapLayer{tileset: tileset}
	l.init(spr, l)
	return l
}

func (l *TilemapLayer) IsTilemap() bool { return true }

// Tileset returns the tileset index of the layer.
func (l *TilemapLayer) Tileset() int { return l.tileset }

// GroupLayer holds child layers ordered bottom to top.
type GroupLayer struct {
	layerBase
	layers []Layer
}

// NewGroupLayer creates a visible, detached, empty group.
func NewGroupLayer(spr *Sprite) *GroupLayer {
	g := &GroupLayer{}
	g.init(spr, g)
	return g
}

func (g *GroupLayer) IsImage() bool   { return false }
func (g *GroupLayer) IsGroup() bool   { return true }
func (g *GroupLayer) IsTilemap() bool { return false }

// Layers returns the direct children, bottom to top. The slice is a copy.
func (g *GroupLayer) Layers() []Layer {
	return slices.Clone(g.layers)
}

// LayerCount returns the number of direct children.
func (g *GroupLayer) LayerCount() int {
	return len(g.layers)
}

// AllLayers returns every descendant, bottom to top, each group listed
// right before its own children.
func (g *GroupLayer) AllLayers() []Layer {
	var list []Layer
	g.appendAll(&list)
	return list
}

func (g *GroupLayer) appendAll(list *[]Layer) {
	for _, child := range g.layers {
		*list = append(*list, child)
		if sub, ok := child.(*GroupLayer); ok {
			sub.appendAll(list)
		}
	}
}

func (g *GroupLayer) indexOf(b *layerBase) int {
	return slices.IndexFunc(g.layers, func(l Layer) bool { return l.base() == b })
}

// IndexOf returns the position of l among the direct children, or -1.
func (g *GroupLayer) IndexOf(l Layer) int {
	return g.indexOf(l.base())
}

// AddLayer appends l on top of the group.
func (g *GroupLayer) AddLayer(l Layer) {
	g.insertAt(l, len(g.layers))
}

// InsertLayer inserts l right above after. A nil after inserts l at the
// bottom of the group. It panics if after is not a child of g or if l is
// already attached.
func (g *GroupLayer) InsertLayer(l Layer, after Layer) {
	pos := 0
	if after != nil {
		i := g.IndexOf(after)
		if i < 0 {
			panic(fmt.Sprintf("sprite: layer %q is not a child of group %q", after.Name(), g.name))
		}
		pos = i + 1
	}
	g.insertAt(l, pos)
}

func (g *GroupLayer) insertAt(l Layer, pos int) {
	b := l.base()
	if b.parent != nil {
		panic(fmt.Sprintf("sprite: layer %q is already attached to group %q", b.name, b.parent.name))
	}
	g.layers = slices.Insert(g.layers, pos, l)
	b.parent = g
}

// RemoveLayer detaches l from the group. It panics if l is not a child.
func (g *GroupLayer) RemoveLayer(l Layer) {
	i := g.IndexOf(l)
	if i < 0 {
		panic(fmt.Sprintf("sprite: layer %q is not a child of group %q", l.Name(), g.name))
	}
	g.layers = slices.Delete(g.layers, i, i+1)
	l.base().parent = nil
}

// HasAncestor reports whether g is a (direct or indirect) parent of l.
func (g *GroupLayer) HasAncestor(l Layer) bool {
	for p := l.Parent(); p != nil; p = p.Parent() {
		if p == g {
			return true
		}
	}
	return false
}

var (
	_ Layer = (*ImageLayer)(nil)
	_ Layer = (*TilemapLayer)(nil)
	_ Layer = (*GroupLayer)(nil)
)
