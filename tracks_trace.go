package props

import (
	"encoding/json"
	"sort"
)

// TrackOutcome classifies how one stored binding fared during resolution.
type TrackOutcome string

const (
	// TrackAccepted marks a binding that resolved to a sequencable leaf.
	TrackAccepted TrackOutcome = "accepted"
	// TrackMalformed marks a stored key that failed to decode.
	TrackMalformed TrackOutcome = "malformed"
	// TrackStale marks a key that decoded but no longer resolves against the
	// current schema, or resolves to a non-sequencable leaf.
	TrackStale TrackOutcome = "stale"
)

// TrackTraceEntry records the resolution outcome for one stored key.
type TrackTraceEntry struct {
	Key     string       `json:"key"`
	TrackID string       `json:"track_id"`
	Outcome TrackOutcome `json:"outcome"`
	Order   int          `json:"order"`
	Error   string       `json:"error,omitempty"`
}

// ResolveTrace captures per-entry provenance for one resolution pass. It is
// diagnostic output for tooling; the resolver's contract does not change when
// tracing is enabled.
type ResolveTrace struct {
	Entries []TrackTraceEntry `json:"entries"`
}

// ToJSON serialises the trace for logging or transport.
func (t ResolveTrace) ToJSON() ([]byte, error) {
	type alias ResolveTrace
	return json.Marshal(alias(t))
}

func (t *ResolveTrace) add(entry TrackTraceEntry) {
	if t == nil {
		return
	}
	t.Entries = append(t.Entries, entry)
}

// ResolveValidTracksWithTrace behaves exactly like ResolveValidTracks and
// additionally reports how every raw entry was classified. Trace entries are
// sorted by key so repeated passes over the same input compare equal.
func ResolveValidTracksWithTrace(root *Compound, raw map[string]string, logger DiagnosticLogger) ([]TrackBinding, ResolveTrace) {
	trace := ResolveTrace{}
	bindings := resolveTracks(root, raw, logger, &trace)
	sort.Slice(trace.Entries, func(i, j int) bool {
		return trace.Entries[i].Key < trace.Entries[j].Key
	})
	return bindings, trace
}
