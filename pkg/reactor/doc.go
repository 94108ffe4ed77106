// Package reactor provides mutable cells and dependency-tracked derived
// computations: the pull-based substrate the props engine memoizes through.
//
// A Cell holds a value and a generation counter bumped on every write. A
// Derived wraps a zero-argument compute closure; calling Get inside another
// derived's compute registers a read dependency, and a derived recomputes
// only when some recorded dependency's generation has moved. Recomputations
// that produce a structurally equal value keep the previous value and
// generation, so downstream derivations short-circuit.
//
// Derivations run to completion in a single logical evaluation context; the
// package performs no locking around evaluation. Re-entering a derived while
// it is mid-computation is a usage contract violation and panics.
package reactor
