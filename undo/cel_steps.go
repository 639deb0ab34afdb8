package undo

import (
	"image"

	"github.com/gogpu/sprite"
)

// AddCel attaches a detached cel to an image layer.
type AddCel struct {
	layer *sprite.ImageLayer
	cel   *sprite.Cel
}

// NewAddCel returns a step attaching cel to layer. It panics if layer
// holds no cels (a group).
func NewAddCel(layer sprite.Layer, cel *sprite.Cel) *AddCel {
	il := sprite.AsImageLayer(layer)
	if il == nil || cel == nil {
		panic("undo: AddCel needs an image layer and a cel")
	}
	return &AddCel{layer: il, cel: cel}
}

func (s *AddCel) Kind() Kind { return KindAddCel }
func (s *AddCel) Execute()   { s.layer.AddCel(s.cel) }
func (s *AddCel) Undo()      { s.layer.RemoveCel(s.cel) }

// RemoveCel detaches a cel from its layer. The cel object itself is kept,
// so undo restores its data pointer and with it the link structure.
type RemoveCel struct {
	cel   *sprite.Cel
	layer *sprite.ImageLayer
}

// NewRemoveCel returns a step removing cel from its layer.
func NewRemoveCel(cel *sprite.Cel) *RemoveCel {
	if cel == nil {
		panic("undo: RemoveCel needs a cel")
	}
	return &RemoveCel{cel: cel}
}

func (s *RemoveCel) Kind() Kind { return KindRemoveCel }

func (s *RemoveCel) Execute() {
	s.layer = s.cel.ImageLayer()
	if s.layer == nil {
		panic("undo: removing a detached cel")
	}
	s.layer.RemoveCel(s.cel)
}

func (s *RemoveCel) Undo() { s.layer.AddCel(s.cel) }

// ReplaceImage makes every cel of a sprite showing one image show another.
type ReplaceImage struct {
	spr      *sprite.Sprite
	oldImage *sprite.Image
	newImage *sprite.Image
}

// NewReplaceImage returns a step replacing oldImage with newImage across spr.
func NewReplaceImage(spr *sprite.Sprite, oldImage, newImage *sprite.Image) *ReplaceImage {
	if spr == nil || oldImage == nil || newImage == nil {
		panic("undo: ReplaceImage needs a sprite and two images")
	}
	return &ReplaceImage{spr: spr, oldImage: oldImage, newImage: newImage}
}

func (s *ReplaceImage) Kind() Kind { return KindReplaceImage }
func (s *ReplaceImage) Execute()   { s.spr.ReplaceImage(s.oldImage.ID(), s.newImage) }
func (s *ReplaceImage) Undo()      { s.spr.ReplaceImage(s.newImage.ID(), s.oldImage) }

// SetCelPosition moves a cel.
type SetCelPosition struct {
	cel      *sprite.Cel
	pos      image.Point
	previous image.Point
}

// NewSetCelPosition returns a step moving cel to pos.
func NewSetCelPosition(cel *sprite.Cel, pos image.Point) *SetCelPosition {
	return &SetCelPosition{cel: cel, pos: pos}
}

func (s *SetCelPosition) Kind() Kind { return KindSetCelPosition }

func (s *SetCelPosition) Execute() {
	s.previous = s.cel.Position()
	s.cel.SetPosition(s.pos)
}

func (s *SetCelPosition) Undo() { s.cel.SetPosition(s.previous) }

// SetCelOpacity changes the opacity of a cel.
type SetCelOpacity struct {
	cel      *sprite.Cel
	opacity  uint8
	previous uint8
}

// NewSetCelOpacity returns a step setting the opacity of cel.
func NewSetCelOpacity(cel *sprite.Cel, opacity uint8) *SetCelOpacity {
	return &SetCelOpacity{cel: cel, opacity: opacity}
}

func (s *SetCelOpacity) Kind() Kind { return KindSetCelOpacity }

func (s *SetCelOpacity) Execute() {
	s.previous = s.cel.Opacity()
	s.cel.SetOpacity(s.opacity)
}

func (s *SetCelOpacity) Undo() { s.cel.SetOpacity(s.previous) }

// SetCelZIndex changes the z-index of a cel.
type SetCelZIndex struct {
	cel      *sprite.Cel
	z        int
	previous int
}

// NewSetCelZIndex returns a step setting the z-index of cel.
func NewSetCelZIndex(cel *sprite.Cel, z int) *SetCelZIndex {
	return &SetCelZIndex{cel: cel, z: z}
}

func (s *SetCelZIndex) Kind() Kind { return KindSetCelZIndex }

func (s *SetCelZIndex) Execute() {
	s.previous = s.cel.ZIndex()
	s.cel.SetZIndex(s.z)
}

func (s *SetCelZIndex) Undo() { s.cel.SetZIndex(s.previous) }

// UnlinkCel gives a linked cel a private copy of its data. The copy is
// made on the first Execute and reused on redo, so later steps that refer
// to the private image keep working.
type UnlinkCel struct {
	cel     *sprite.Cel
	shared  *sprite.CelData
	private *sprite.CelData
}

// NewUnlinkCel returns a step unlinking cel from the cels sharing its data.
func NewUnlinkCel(cel *sprite.Cel) *UnlinkCel {
	if cel == nil {
		panic("undo: UnlinkCel needs a cel")
	}
	return &UnlinkCel{cel: cel}
}

func (s *UnlinkCel) Kind() Kind { return KindUnlinkCel }

func (s *UnlinkCel) Execute() {
	s.shared = s.cel.Data()
	if s.private == nil {
		s.private = s.shared.Clone()
	}
	s.cel.SetData(s.private)
}

func (s *UnlinkCel) Undo() { s.cel.SetData(s.shared) }
