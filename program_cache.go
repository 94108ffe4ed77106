package props

import "sync"

// ProgramCache stores compiled sanitize programs keyed by expression strings.
// Implementations must be safe for concurrent use.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// NewProgramCache returns an unbounded in-memory ProgramCache. Schemas carry
// a small, fixed set of sanitize expressions, so eviction is left to callers
// with unusual workloads.
func NewProgramCache() ProgramCache {
	return &mapProgramCache{}
}

type mapProgramCache struct {
	programs sync.Map
}

func (c *mapProgramCache) Get(key string) (any, bool) {
	return c.programs.Load(key)
}

func (c *mapProgramCache) Set(key string, value any) {
	c.programs.Store(key, value)
}
