package layerops

import (
	"golang.org/x/text/language"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/i18n"
)

// Option configures FlattenLayers.
//
// Example:
//
//	// Merge the selection into its bottom layer with legacy blending.
//	layerops.FlattenLayers(tx, doc, sel,
//		layerops.WithMergeDown(true),
//		layerops.WithNewBlend(false))
type Option func(*options)

type options struct {
	newBlend  bool
	mergeDown bool
	lang      language.Tag
	layerName string
	pool      *sprite.ImagePool
}

// scratchPool backs the per-frame canvas of operations that are not given
// a pool of their own.
var scratchPool = sprite.NewImagePool(4)

func defaultOptions() options {
	return options{
		newBlend: true,
		lang:     language.English,
		pool:     scratchPool,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithNewBlend selects the backdrop-aware blenders (the default) or the
// legacy ones for compositing the selection.
func WithNewBlend(on bool) Option {
	return func(o *options) {
		o.newBlend = on
	}
}

// WithMergeDown flattens into the bottom selected layer instead of a new
// layer, and notifies the document observers of the merge.
func WithMergeDown(on bool) Option {
	return func(o *options) {
		o.mergeDown = on
	}
}

// WithLanguage sets the language of the default name given to a new
// flattened layer.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithLayerName overrides the name given to a new flattened layer.
func WithLayerName(name string) Option {
	return func(o *options) {
		o.layerName = name
	}
}

// WithImagePool sets the pool the per-frame scratch canvas is taken from.
func WithImagePool(p *sprite.ImagePool) Option {
	return func(o *options) {
		if p != nil {
			o.pool = p
		}
	}
}

// newLayerName returns the name of a new flattened layer.
func (o *options) newLayerName() string {
	if o.layerName != "" {
		return o.layerName
	}
	return i18n.Text(o.lang, i18n.FlattenedLayer)
}
