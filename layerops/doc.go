// Package layerops implements the destructive layer operations of a sprite
// document: flattening a selection of layers into one and merging a layer
// down into the one below it.
//
// Both operations only mutate the document through undo steps executed on
// a caller-owned transaction, so the caller decides whether the result is
// committed or rolled back:
//
//	tx := undo.New("Flatten")
//	layerops.FlattenLayers(tx, doc, sel)
//	if err := tx.Commit(); err != nil && !errors.Is(err, undo.ErrEmpty) {
//		return err
//	}
//
// Neither operation is safe for concurrent use with other code touching the
// same document.
package layerops
