// Package props implements a per-object reactive derivation and
// path-resolution engine for declarative property schemas.
//
// A schema is an immutable tree of Compound and Leaf nodes. Each leaf carries
// a default value, an optional sequencable flag, and a sanitize rule that
// coerces raw JSON input into the leaf's value shape. Raw inputs — a static
// override blob and a flat map of serialized-pointer → track-id bindings —
// are owned by an external store and consumed read-only here.
//
// From those inputs the engine derives, lazily and memoized per object:
//
//   - the nested default-value tree
//   - the sanitized static-override tree
//   - the effective value tree (overrides merged over defaults)
//   - the canonically ordered list of valid track bindings
//   - the same bindings projected into a nested map
//
// Derivations are pulled through dependency-tracked handles (see
// pkg/reactor): repeated reads are O(1) until a read input changes, and
// structurally equal recomputations short-circuit downstream work.
//
// Data problems in external inputs never abort a derivation. A track key
// that fails to decode is skipped with one diagnostic; a key that no longer
// resolves against the current schema is dropped silently, since schema
// reconfiguration routinely strands recorded tracks.
//
// Sanitize rules can be plain Go functions or expressions executed by an
// Evaluator (expr-lang, CEL, or goja behind the js_eval build tag).
package props
