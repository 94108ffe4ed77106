package props

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-props/pkg/reactor"
)

type objectConfig struct {
	logger    DiagnosticLogger
	overrides json.RawMessage
	tracks    map[string]string
}

// ObjectOption configures an Object at construction.
type ObjectOption func(*objectConfig)

// WithDiagnosticLogger attaches a diagnostic logger to the object.
func WithDiagnosticLogger(logger DiagnosticLogger) ObjectOption {
	return func(cfg *objectConfig) {
		if logger == nil {
			cfg.logger = noopDiagnosticLogger{}
			return
		}
		cfg.logger = logger
	}
}

// WithStaticOverrides seeds the raw static-override blob.
func WithStaticOverrides(raw json.RawMessage) ObjectOption {
	return func(cfg *objectConfig) {
		cfg.overrides = raw
	}
}

// WithTracks seeds the raw encoded-pointer → track-id bindings.
func WithTracks(raw map[string]string) ObjectOption {
	return func(cfg *objectConfig) {
		cfg.tracks = raw
	}
}

func applyObjectOptions(opts []ObjectOption) objectConfig {
	cfg := objectConfig{logger: noopDiagnosticLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Object owns the reactive inputs and memoized derivations for one configured
// instance. The schema and raw inputs are held in cells; every derived view
// is rebuilt lazily when a cell it read changes, and repeated reads with
// unchanged inputs cost one map lookup.
type Object struct {
	schema    *reactor.Cell[*Compound]
	overrides *reactor.Cell[json.RawMessage]
	tracks    *reactor.Cell[map[string]string]
	logger    DiagnosticLogger
	cache     *derivationCache
}

// NewObject constructs an object around schema. The schema is treated as an
// immutable value; use Reconfigure to swap it.
func NewObject(schema *Compound, opts ...ObjectOption) *Object {
	cfg := applyObjectOptions(opts)
	o := &Object{
		schema:    reactor.NewCell(schema),
		overrides: reactor.NewCell(cfg.overrides),
		tracks:    reactor.NewCell(cfg.tracks),
		logger:    cfg.logger,
	}
	o.cache = newDerivationCache(o)
	return o
}

// Reconfigure replaces the schema reference, invalidating every derivation
// that read it.
func (o *Object) Reconfigure(schema *Compound) {
	o.schema.Set(schema)
}

// SetStaticOverrides replaces the raw override blob.
func (o *Object) SetStaticOverrides(raw json.RawMessage) {
	o.overrides.Set(raw)
}

// SetTracks replaces the raw track bindings.
func (o *Object) SetTracks(raw map[string]string) {
	o.tracks.Set(raw)
}

// DefaultValues derives the nested default-value tree from the schema.
func (o *Object) DefaultValues() *reactor.Derived[map[string]any] {
	return cachedDerivation(o.cache, o, derivationDefaults, func() *reactor.Derived[map[string]any] {
		return reactor.NewDerived(func() map[string]any {
			return Defaults(o.schema.Get())
		})
	})
}

// StaticValues derives the sanitized override tree from the raw blob. A blob
// that fails to decode is reported once per recomputation and treated as
// absent; it never aborts the derivation.
func (o *Object) StaticValues() *reactor.Derived[map[string]any] {
	return cachedDerivation(o.cache, o, derivationStatics, func() *reactor.Derived[map[string]any] {
		return reactor.NewDerived(func() map[string]any {
			values, err := StaticValues(o.schema.Get(), o.overrides.Get())
			if err != nil {
				o.logger.LogDiagnostic(Diagnostic{Op: derivationStatics.String(), Err: err})
			}
			return values
		})
	})
}

// FinalValues derives the effective value tree: static overrides merged over
// defaults.
func (o *Object) FinalValues() *reactor.Derived[map[string]any] {
	return cachedDerivation(o.cache, o, derivationFinal, func() *reactor.Derived[map[string]any] {
		return reactor.NewDerived(func() map[string]any {
			return MergeTrees(o.StaticValues().Get(), o.DefaultValues().Get())
		})
	})
}

// ValidSequenceTracks derives the canonically ordered valid track bindings.
func (o *Object) ValidSequenceTracks() *reactor.Derived[[]TrackBinding] {
	return cachedDerivation(o.cache, o, derivationTrackList, func() *reactor.Derived[[]TrackBinding] {
		return reactor.NewDerived(func() []TrackBinding {
			return ResolveValidTracks(o.schema.Get(), o.tracks.Get(), o.logger)
		})
	})
}

// ValidSequenceTracksAsTree projects the valid bindings into a nested map of
// track ids keyed by pointer segments.
func (o *Object) ValidSequenceTracksAsTree() *reactor.Derived[map[string]any] {
	return cachedDerivation(o.cache, o, derivationTrackTree, func() *reactor.Derived[map[string]any] {
		return reactor.NewDerived(func() map[string]any {
			tree, err := ProjectToTree(o.ValidSequenceTracks().Get())
			if err != nil {
				// resolution guarantees disjoint pointers; a conflict here is
				// a bug, not bad data
				panic(fmt.Sprintf("props: %v", err))
			}
			return tree
		})
	})
}

// ValueAtPointer looks up the effective value under p. ok is false when the
// pointer does not exist in the tree, a normal outcome for partial paths.
func (o *Object) ValueAtPointer(p Pointer) (any, bool) {
	return ValueAt(o.FinalValues().Get(), p)
}
