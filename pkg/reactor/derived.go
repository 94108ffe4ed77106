package reactor

import "reflect"

// dependency is anything a derived can read: a cell or another derived.
// refresh brings the dependency up to date and reports its generation.
type dependency interface {
	refresh() uint64
}

type depRecord struct {
	dep dependency
	gen uint64
}

// tracker collects the dependencies read by the computation currently
// evaluating. One logical evaluation context runs at a time.
type tracker struct {
	deps []depRecord
}

var active *tracker

func record(dep dependency, gen uint64) {
	if active != nil {
		active.deps = append(active.deps, depRecord{dep: dep, gen: gen})
	}
}

// Derived memoizes a computation over cells and other deriveds. Its value is
// recomputed lazily on Get when a recorded dependency changed; otherwise the
// stored value is returned as-is.
type Derived[T any] struct {
	compute   func() T
	equal     func(a, b T) bool
	value     T
	deps      []depRecord
	gen       uint64
	valid     bool
	computing bool
}

// DerivedOption configures a derived handle.
type DerivedOption[T any] func(*Derived[T])

// WithEquality replaces the structural-equality check used to decide whether
// a recomputation actually changed the value.
func WithEquality[T any](equal func(a, b T) bool) DerivedOption[T] {
	return func(d *Derived[T]) {
		if equal != nil {
			d.equal = equal
		}
	}
}

// NewDerived wraps compute in a memoized, dependency-tracked handle. compute
// must be pure over the cells and deriveds it reads.
func NewDerived[T any](compute func() T, opts ...DerivedOption[T]) *Derived[T] {
	d := &Derived[T]{
		compute: compute,
		equal:   func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Get returns the memoized value, recomputing first when a dependency moved.
// Calling Get inside another derived computation registers this handle as a
// dependency of that computation.
func (d *Derived[T]) Get() T {
	d.sync()
	record(d, d.gen)
	return d.value
}

func (d *Derived[T]) refresh() uint64 {
	d.sync()
	return d.gen
}

func (d *Derived[T]) sync() {
	if d.computing {
		panic("reactor: derived re-entered while computing")
	}
	if d.valid && !d.dirty() {
		return
	}
	d.recompute()
}

func (d *Derived[T]) dirty() bool {
	for _, r := range d.deps {
		if r.dep.refresh() != r.gen {
			return true
		}
	}
	return false
}

func (d *Derived[T]) recompute() {
	parent := active
	t := &tracker{}
	d.computing = true
	active = t
	defer func() {
		active = parent
		d.computing = false
	}()

	value := d.compute()
	d.deps = t.deps
	if d.valid && d.equal(value, d.value) {
		// structurally equal: keep value and generation so dependents skip
		return
	}
	d.value = value
	d.gen++
	d.valid = true
}
