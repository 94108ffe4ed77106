package trackstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound reports a ref with no persisted record.
var ErrNotFound = errors.New("trackstore: record not found")

// Ref identifies one object's persisted sequencing state.
type Ref struct {
	Sheet  string
	Object string
}

// Identifier returns the deterministic storage key for the ref.
func (r Ref) Identifier() (string, error) {
	if r.Sheet == "" {
		return "", fmt.Errorf("trackstore: ref requires a sheet")
	}
	if r.Object == "" {
		return "", fmt.Errorf("trackstore: ref requires an object")
	}
	return fmt.Sprintf("%s/%s", r.Sheet, r.Object), nil
}

// Record is the persisted layout for one object.
type Record struct {
	Tracks    map[string]string `json:"tracks,omitempty"`
	Overrides json.RawMessage   `json:"overrides,omitempty"`
}

// Clone returns a deep copy so callers can hand records to the engine without
// aliasing store-owned state.
func (r Record) Clone() Record {
	out := Record{}
	if r.Tracks != nil {
		out.Tracks = make(map[string]string, len(r.Tracks))
		for key, id := range r.Tracks {
			out.Tracks[key] = id
		}
	}
	if r.Overrides != nil {
		out.Overrides = append(json.RawMessage(nil), r.Overrides...)
	}
	return out
}

// Store loads and saves one record for a single ref.
type Store interface {
	Load(ctx context.Context, ref Ref) (Record, bool, error)
	Save(ctx context.Context, ref Ref, record Record) error
}
