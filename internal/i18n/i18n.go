// Package i18n holds the user-visible default names created by the layer
// operations, translated with golang.org/x/text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	FlattenedLayer = "Flattened Layer"
)

// supported lists the catalog languages. The first entry is the fallback
// for tags nothing else matches.
var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
}

var (
	cat     = catalog.NewBuilder(catalog.Fallback(language.English))
	matcher = language.NewMatcher(supported)
)

func init() {
	set := func(tag language.Tag, key, msg string) {
		if err := cat.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}
	set(language.English, FlattenedLayer, "Flattened Layer")
	set(language.German, FlattenedLayer, "Reduzierte Ebene")
	set(language.Spanish, FlattenedLayer, "Capa acoplada")
	set(language.French, FlattenedLayer, "Calque aplati")
}

// Match returns the catalog language closest to tag.
func Match(tag language.Tag) language.Tag {
	_, i, _ := matcher.Match(tag)
	return supported[i]
}

// Text returns the translation of key for tag. Unknown keys are returned
// unchanged.
func Text(tag language.Tag, key string) string {
	p := message.NewPrinter(Match(tag), message.Catalog(cat))
	return p.Sprintf(key)
}
