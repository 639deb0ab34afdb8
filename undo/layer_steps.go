package undo

import "github.com/gogpu/sprite"

// AddLayer inserts a detached layer into a group right above an anchor.
type AddLayer struct {
	parent *sprite.GroupLayer
	layer  sprite.Layer
	after  sprite.Layer
}

// NewAddLayer returns a step inserting layer into parent right above
// after. A nil after inserts at the bottom of the group.
func NewAddLayer(parent *sprite.GroupLayer, layer, after sprite.Layer) *AddLayer {
	if parent == nil || layer == nil {
		panic("undo: AddLayer needs a parent and a layer")
	}
	return &AddLayer{parent: parent, layer: layer, after: after}
}

func (s *AddLayer) Kind() Kind { return KindAddLayer }
func (s *AddLayer) Execute()   { s.parent.InsertLayer(s.layer, s.after) }
func (s *AddLayer) Undo()      { s.parent.RemoveLayer(s.layer) }

// RemoveLayer detaches a layer from its group. The layer keeps its cels
// and flags so undo puts it back as it was, background included.
type RemoveLayer struct {
	layer  sprite.Layer
	parent *sprite.GroupLayer
	after  sprite.Layer
}

// NewRemoveLayer returns a step removing layer from its group.
func NewRemoveLayer(layer sprite.Layer) *RemoveLayer {
	if layer == nil {
		panic("undo: RemoveLayer needs a layer")
	}
	return &RemoveLayer{layer: layer}
}

func (s *RemoveLayer) Kind() Kind { return KindRemoveLayer }

func (s *RemoveLayer) Execute() {
	s.parent = s.layer.Parent()
	if s.parent == nil {
		panic("undo: removing a detached layer")
	}
	s.after = s.layer.Previous()
	s.parent.RemoveLayer(s.layer)
}

func (s *RemoveLayer) Undo() {
	s.parent.InsertLayer(s.layer, s.after)
}

// SetLayerName renames a layer.
type SetLayerName struct {
	layer    sprite.Layer
	name     string
	previous string
}

// NewSetLayerName returns a step renaming layer.
func NewSetLayerName(layer sprite.Layer, name string) *SetLayerName {
	return &SetLayerName{layer: layer, name: name}
}

func (s *SetLayerName) Kind() Kind { return KindSetLayerName }

func (s *SetLayerName) Execute() {
	s.previous = s.layer.Name()
	s.layer.SetName(s.name)
}

func (s *SetLayerName) Undo() { s.layer.SetName(s.previous) }

// SetLayerOpacity changes the opacity of a layer.
type SetLayerOpacity struct {
	layer    sprite.Layer
	opacity  uint8
	previous uint8
}

// NewSetLayerOpacity returns a step setting the opacity of layer.
func NewSetLayerOpacity(layer sprite.Layer, opacity uint8) *SetLayerOpacity {
	return &SetLayerOpacity{layer: layer, opacity: opacity}
}

func (s *SetLayerOpacity) Kind() Kind { return KindSetLayerOpacity }

func (s *SetLayerOpacity) Execute() {
	s.previous = s.layer.Opacity()
	s.layer.SetOpacity(s.opacity)
}

func (s *SetLayerOpacity) Undo() { s.layer.SetOpacity(s.previous) }

// SetLayerBlendMode changes the blend mode of a layer.
type SetLayerBlendMode struct {
	layer    sprite.Layer
	mode     sprite.BlendMode
	previous sprite.BlendMode
}

// NewSetLayerBlendMode returns a step setting the blend mode of layer.
func NewSetLayerBlendMode(layer sprite.Layer, mode sprite.BlendMode) *SetLayerBlendMode {
	return &SetLayerBlendMode{layer: layer, mode: mode}
}

func (s *SetLayerBlendMode) Kind() Kind { return KindSetLayerBlendMode }

func (s *SetLayerBlendMode) Execute() {
	s.previous = s.layer.BlendMode()
	s.layer.SetBlendMode(s.mode)
}

func (s *SetLayerBlendMode) Undo() { s.layer.SetBlendMode(s.previous) }

// SetLayerVisibility shows or hides a layer.
type SetLayerVisibility struct {
	layer    sprite.Layer
	visible  bool
	previous bool
}

// NewSetLayerVisibility returns a step showing or hiding layer.
func NewSetLayerVisibility(layer sprite.Layer, visible bool) *SetLayerVisibility {
	return &SetLayerVisibility{layer: layer, visible: visible}
}

func (s *SetLayerVisibility) Kind() Kind { return KindSetLayerVisibility }

func (s *SetLayerVisibility) Execute() {
	s.previous = s.layer.IsVisible()
	s.layer.SetVisible(s.visible)
}

func (s *SetLayerVisibility) Undo() { s.layer.SetVisible(s.previous) }
