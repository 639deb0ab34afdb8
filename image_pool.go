package sprite

import "sync"

// ImagePool is a thread-safe pool for reusing scratch images.
//
// ImagePool groups images by spec, allowing efficient reuse of
// identically-sized buffers. Operations that render every frame of a sprite
// into a temporary canvas use it to avoid allocating one canvas per call.
//
// Thread safety: All methods are safe for concurrent use.
type ImagePool struct {
	mu      sync.Mutex
	buckets map[ImageSpec][]*Image
	maxSize int // max images per bucket
}

// NewImagePool creates a pool retaining at most maxPerBucket images per spec.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewImagePool(maxPerBucket int) *ImagePool {
	return &ImagePool{
		buckets: make(map[ImageSpec][]*Image),
		maxSize: maxPerBucket,
	}
}

// Get retrieves an image with the given spec from the pool or creates a new
// one. A reused image is cleared to its mask color.
func (p *ImagePool) Get(spec ImageSpec) *Image {
	p.mu.Lock()
	bucket := p.buckets[spec]
	if len(bucket) > 0 {
		img := bucket[len(bucket)-1]
		p.buckets[spec] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		img.Clear(spec.MaskColor)
		return img
	}
	p.mu.Unlock()

	return NewImage(spec)
}

// Put returns an image to the pool for reuse. The caller must not keep any
// reference to img. If img is nil or its bucket is full, it is discarded.
func (p *ImagePool) Put(img *Image) {
	if img == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[img.spec]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[img.spec] = append(bucket, img)
}

// Len returns the number of pooled images with the given spec.
func (p *ImagePool) Len(spec ImageSpec) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[spec])
}
