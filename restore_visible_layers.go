package sprite

// RestoreVisibleLayers records layer visibility changes so they can be
// undone outside the undo history. Callers defer Restore right after
// ShowSelectedLayers:
//
//	var restore sprite.RestoreVisibleLayers
//	restore.ShowSelectedLayers(spr, sel)
//	defer restore.Restore()
type RestoreVisibleLayers struct {
	saved []savedVisibility
}

type savedVisibility struct {
	layer   Layer
	visible bool
}

// ShowSelectedLayers makes the selected layers, their descendants and their
// enclosing groups visible and hides every other layer of spr.
func (r *RestoreVisibleLayers) ShowSelectedLayers(spr *Sprite, sel *SelectedLayers) {
	show := sel.Clone()
	show.PropagateSelection()

	for _, l := range spr.AllLayers() {
		want := show.Contains(l)
		if l.IsVisible() != want {
			r.saved = append(r.saved, savedVisibility{layer: l, visible: l.IsVisible()})
			l.SetVisible(want)
		}
	}
}

// Restore puts back every visibility flag changed by ShowSelectedLayers.
// It is safe to call more than once.
func (r *RestoreVisibleLayers) Restore() {
	for i := len(r.saved) - 1; i >= 0; i-- {
		r.saved[i].layer.SetVisible(r.saved[i].visible)
	}
	r.saved = nil
}
