package sprite

import "sync/atomic"

// ObjectID identifies a sprite object (image, cel data, cel, layer or
// sprite) for the lifetime of the process. Zero is never assigned.
type ObjectID uint64

var lastObjectID atomic.Uint64

func newObjectID() ObjectID {
	return ObjectID(lastObjectID.Add(1))
}
