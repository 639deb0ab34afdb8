// Package sprite provides the data model of a multi-frame layered sprite.
//
// # Overview
//
// A Sprite owns a canvas spec, a frame count and a tree of layers rooted at
// an unnamed group. Image layers hold at most one Cel per frame; a cel shows
// an Image at a canvas position with an opacity and a z-index that shifts
// its paint order among the cels of the same frame. Cels of one layer can be
// linked: they share one CelData, and therefore one Image.
//
// # Quick Start
//
//	spr := sprite.New(sprite.NewImageSpec(64, 64), 4)
//	doc := sprite.NewDocument(spr)
//
//	layer := sprite.NewImageLayer(spr)
//	layer.SetName("ink")
//	spr.Root().AddLayer(layer)
//
//	img := sprite.NewImageSize(8, 8)
//	img.Clear(color.NRGBA{R: 255, A: 255})
//	layer.AddCel(sprite.NewCel(0, img))
//
// # Mutations
//
// The setters in this package mutate objects directly and record nothing.
// Document edits that must be undoable go through the steps of package
// undo; the operations of package layerops only mutate through them.
//
// # Background layer
//
// A sprite has at most one background layer. It is the bottom top-level
// layer, it is opaque and its cels cover the whole canvas. Document.ColorToClearLayer
// returns the color that stands for "nothing" on it.
//
// # Logging
//
// The package is silent by default. Call SetLogger to route the debug and
// info records of the layer operations to an slog handler.
package sprite
