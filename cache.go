package props

import "github.com/goliatone/go-props/pkg/reactor"

// derivation tags the named derived views memoized per object.
type derivation int

const (
	derivationDefaults derivation = iota
	derivationStatics
	derivationFinal
	derivationTrackList
	derivationTrackTree
)

func (d derivation) String() string {
	switch d {
	case derivationDefaults:
		return "default-values"
	case derivationStatics:
		return "static-values"
	case derivationFinal:
		return "final-values"
	case derivationTrackList:
		return "valid-tracks"
	case derivationTrackTree:
		return "valid-tracks-tree"
	default:
		return "unknown"
	}
}

// derivationCache lazily builds and retains one handle per derivation tag.
// Distinct tags never share storage. A cache belongs to exactly one object,
// since every handle closes over that object's cells; sharing across objects
// is a usage contract violation and panics.
type derivationCache struct {
	owner   *Object
	handles map[derivation]any
}

func newDerivationCache(owner *Object) *derivationCache {
	return &derivationCache{
		owner:   owner,
		handles: make(map[derivation]any),
	}
}

func cachedDerivation[T any](c *derivationCache, owner *Object, key derivation, build func() *reactor.Derived[T]) *reactor.Derived[T] {
	if c.owner != owner {
		panic("props: derivation cache shared across objects")
	}
	if handle, ok := c.handles[key]; ok {
		return handle.(*reactor.Derived[T])
	}
	handle := build()
	c.handles[key] = handle
	return handle
}
