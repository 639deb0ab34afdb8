package sprite

// SelectedLayers is a set of layers of one sprite.
type SelectedLayers struct {
	set map[Layer]struct{}
}

// NewSelectedLayers returns a selection holding layers.
func NewSelectedLayers(layers ...Layer) *SelectedLayers {
	s := &SelectedLayers{set: make(map[Layer]struct{}, len(layers))}
	for _, l := range layers {
		s.Insert(l)
	}
	return s
}

// Insert adds l to the selection. It panics on a nil layer.
func (s *SelectedLayers) Insert(l Layer) {
	if l == nil {
		panic("sprite: nil layer in selection")
	}
	if s.set == nil {
		s.set = make(map[Layer]struct{})
	}
	s.set[l] = struct{}{}
}

// Erase removes l from the selection.
func (s *SelectedLayers) Erase(l Layer) {
	delete(s.set, l)
}

// Contains reports whether l is selected.
func (s *SelectedLayers) Contains(l Layer) bool {
	_, ok := s.set[l]
	return ok
}

// Len returns the number of selected layers.
func (s *SelectedLayers) Len() int { return len(s.set) }

// Empty reports whether nothing is selected.
func (s *SelectedLayers) Empty() bool { return len(s.set) == 0 }

// Clone returns an independent copy of the selection.
func (s *SelectedLayers) Clone() *SelectedLayers {
	c := &SelectedLayers{set: make(map[Layer]struct{}, len(s.set))}
	for l := range s.set {
		c.set[l] = struct{}{}
	}
	return c
}

// RemoveChildrenIfParentIsSelected drops every layer that has a selected
// ancestor group. Afterwards no selected layer is nested in another one.
func (s *SelectedLayers) RemoveChildrenIfParentIsSelected() {
	var drop []Layer
	for l := range s.set {
		for p := l.Parent(); p != nil; p = p.Parent() {
			if s.Contains(p) {
				drop = append(drop, l)
				break
			}
		}
	}
	for _, l := range drop {
		delete(s.set, l)
	}
}

// PropagateSelection extends the selection with every descendant of the
// selected groups and every enclosing group of the selected layers, the
// sprite root excluded.
func (s *SelectedLayers) PropagateSelection() {
	var add []Layer
	for l := range s.set {
		if g, ok := l.(*GroupLayer); ok {
			add = append(add, g.AllLayers()...)
		}
		for p := l.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
			add = append(add, p)
		}
	}
	for _, l := range add {
		s.set[l] = struct{}{}
	}
}

// ToBrowsableLayerList returns the selected layers of spr bottom to top,
// each group right before its children.
func (s *SelectedLayers) ToBrowsableLayerList(spr *Sprite) []Layer {
	if s.Empty() {
		return nil
	}
	var list []Layer
	for _, l := range spr.AllLayers() {
		if s.Contains(l) {
			list = append(list, l)
		}
	}
	return list
}
