// Package trackstore defines the persistence-facing contract for the raw
// inputs the props engine consumes read-only: per-object encoded-pointer →
// track-id bindings plus the raw static override blob.
//
// Store implementations only load and save one Record per Ref; validation and
// ordering stay in the core props package, which never writes back. Track
// identifiers are minted here and are opaque everywhere else.
package trackstore
