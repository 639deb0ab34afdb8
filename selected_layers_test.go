package sprite

import (
	"image/color"
	"testing"
)

func TestRemoveChildrenIfParentIsSelected(t *testing.T) {
	spr, ls := newTestSprite(t)
	sel := NewSelectedLayers(ls["group"], ls["g1"], ls["a"])
	sel.RemoveChildrenIfParentIsSelected()

	if sel.Contains(ls["g1"]) {
		t.Error("g1 kept although its group is selected")
	}
	got := layerNames(sel.ToBrowsableLayerList(spr))
	want := []string{"a", "group"}
	if !equalNames(got, want) {
		t.Errorf("ToBrowsableLayerList() = %v, want %v", got, want)
	}
}

func TestPropagateSelection(t *testing.T) {
	spr, ls := newTestSprite(t)

	sel := NewSelectedLayers(ls["g2"])
	sel.PropagateSelection()
	got := layerNames(sel.ToBrowsableLayerList(spr))
	if want := []string{"group", "g2"}; !equalNames(got, want) {
		t.Errorf("child selection propagated to %v, want %v", got, want)
	}

	sel = NewSelectedLayers(ls["group"])
	sel.PropagateSelection()
	got = layerNames(sel.ToBrowsableLayerList(spr))
	if want := []string{"group", "g1", "g2"}; !equalNames(got, want) {
		t.Errorf("group selection propagated to %v, want %v", got, want)
	}
	if sel.Contains(spr.Root()) {
		t.Error("root group must never be selected")
	}
}

func TestEmptySelection(t *testing.T) {
	spr, _ := newTestSprite(t)
	sel := NewSelectedLayers()
	if !sel.Empty() || sel.Len() != 0 {
		t.Error("new selection is not empty")
	}
	if got := sel.ToBrowsableLayerList(spr); got != nil {
		t.Errorf("ToBrowsableLayerList() = %v, want nil", got)
	}
}

func TestRestoreVisibleLayers(t *testing.T) {
	spr, ls := newTestSprite(t)
	ls["b"].SetVisible(false)
	ls["g1"].SetVisible(false)

	before := make(map[Layer]bool)
	for _, l := range spr.AllLayers() {
		before[l] = l.IsVisible()
	}

	func() {
		var restore RestoreVisibleLayers
		restore.ShowSelectedLayers(spr, NewSelectedLayers(ls["g1"], ls["b"]))
		defer restore.Restore()

		for _, l := range spr.AllLayers() {
			want := l == ls["g1"] || l == ls["b"] || l == ls["group"]
			if l.IsVisible() != want {
				t.Errorf("inside scope %s visible = %v, want %v", l.Name(), l.IsVisible(), want)
			}
		}
	}()

	for _, l := range spr.AllLayers() {
		if l.IsVisible() != before[l] {
			t.Errorf("after Restore %s visible = %v, want %v", l.Name(), l.IsVisible(), before[l])
		}
	}
}

func TestRestoreVisibleLayersOnPanic(t *testing.T) {
	spr, ls := newTestSprite(t)

	func() {
		defer func() { _ = recover() }()
		var restore RestoreVisibleLayers
		restore.ShowSelectedLayers(spr, NewSelectedLayers(ls["a"]))
		defer restore.Restore()
		panic("abort")
	}()

	for _, l := range spr.AllLayers() {
		if !l.IsVisible() {
			t.Errorf("%s left hidden after an aborted scope", l.Name())
		}
	}
}

type mergeRecorder struct {
	calls [][2]Layer
}

func (r *mergeRecorder) OnLayerMergedDown(src, dst Layer) {
	r.calls = append(r.calls, [2]Layer{src, dst})
}

func TestDocumentObservers(t *testing.T) {
	spr, ls := newTestSprite(t)
	doc := NewDocument(spr)

	rec := &mergeRecorder{}
	doc.AddObserver(rec)
	doc.NotifyLayerMergedDown(ls["b"], ls["a"])
	if len(rec.calls) != 1 || rec.calls[0] != [2]Layer{ls["b"], ls["a"]} {
		t.Errorf("calls = %v, want [[b a]]", rec.calls)
	}

	doc.RemoveObserver(rec)
	doc.NotifyLayerMergedDown(ls["b"], ls["a"])
	if len(rec.calls) != 1 {
		t.Errorf("removed observer still notified: %d calls", len(rec.calls))
	}
}

func TestDocumentColorToClearLayer(t *testing.T) {
	spr, ls := newTestSprite(t)
	doc := NewDocument(spr)
	doc.SetBgColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	if got := doc.ColorToClearLayer(ls["bg"]); got != doc.BgColor() {
		t.Errorf("ColorToClearLayer(bg) = %v, want %v", got, doc.BgColor())
	}
	if got := doc.ColorToClearLayer(ls["a"]); got != spr.TransparentColor() {
		t.Errorf("ColorToClearLayer(a) = %v, want %v", got, spr.TransparentColor())
	}
}
