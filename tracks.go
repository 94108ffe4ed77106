package props

import (
	"fmt"
	"sort"
	"strconv"
)

// TrackBinding pairs a resolved pointer with its externally minted track
// identifier. Identifiers are opaque here: the engine never creates or
// destroys them, it only filters and orders them.
type TrackBinding struct {
	Pointer Pointer
	TrackID string
}

// ResolveValidTracks validates raw encoded-pointer → track-id bindings
// against the schema and returns the survivors ordered by CanonicalOrder.
//
// Keys that fail to decode are skipped with one diagnostic each; a single
// corrupt key never invalidates unrelated bindings. Keys that decode but no
// longer resolve to a sequencable leaf are dropped silently, since schema
// reconfiguration routinely strands recorded tracks. Empty input yields an
// empty, non-nil slice, and unchanged inputs yield structurally equal output.
func ResolveValidTracks(root *Compound, raw map[string]string, logger DiagnosticLogger) []TrackBinding {
	return resolveTracks(root, raw, logger, nil)
}

type orderedBinding struct {
	binding TrackBinding
	order   int
}

func resolveTracks(root *Compound, raw map[string]string, logger DiagnosticLogger, trace *ResolveTrace) []TrackBinding {
	if logger == nil {
		logger = noopDiagnosticLogger{}
	}
	order := CanonicalOrder(root)

	survivors := make([]orderedBinding, 0, len(raw))
	for key, id := range raw {
		p, err := DecodePointer(key)
		if err != nil {
			logger.LogDiagnostic(Diagnostic{Op: "resolve-tracks", Key: key, Err: err})
			trace.add(TrackTraceEntry{Key: key, TrackID: id, Outcome: TrackMalformed, Order: -1, Error: err.Error()})
			continue
		}
		leaf, ok := ResolveLeaf(root, p)
		if !ok || !leaf.Sequencable() {
			// stale: the schema moved on after the track was recorded
			trace.add(TrackTraceEntry{Key: key, TrackID: id, Outcome: TrackStale, Order: -1})
			continue
		}
		idx := order[p.Encode()]
		survivors = append(survivors, orderedBinding{
			binding: TrackBinding{Pointer: p, TrackID: id},
			order:   idx,
		})
		trace.add(TrackTraceEntry{Key: key, TrackID: id, Outcome: TrackAccepted, Order: idx})
	}

	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].order < survivors[j].order
	})

	out := make([]TrackBinding, 0, len(survivors))
	for _, s := range survivors {
		out = append(out, s.binding)
	}
	return out
}

// ProjectToTree nests ordered bindings into a map keyed by pointer segments,
// creating intermediate objects as needed. Resolved pointers are mutually
// exclusive leaves, so a collision indicates a resolution bug upstream and is
// reported as ErrTreeConflict rather than overwritten.
func ProjectToTree(tracks []TrackBinding) (map[string]any, error) {
	tree := map[string]any{}
	for _, t := range tracks {
		if err := insertBinding(tree, t); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func insertBinding(tree map[string]any, t TrackBinding) error {
	if len(t.Pointer) == 0 {
		return fmt.Errorf("%w: empty pointer for track %q", ErrTreeConflict, t.TrackID)
	}
	node := tree
	for _, seg := range t.Pointer[:len(t.Pointer)-1] {
		key := segmentMapKey(seg)
		child, present := node[key]
		if !present {
			next := map[string]any{}
			node[key] = next
			node = next
			continue
		}
		next, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s crosses an existing leaf", ErrTreeConflict, t.Pointer.Encode())
		}
		node = next
	}
	key := segmentMapKey(t.Pointer[len(t.Pointer)-1])
	if _, present := node[key]; present {
		return fmt.Errorf("%w: %s already bound", ErrTreeConflict, t.Pointer.Encode())
	}
	node[key] = t.TrackID
	return nil
}

func segmentMapKey(seg Segment) string {
	if seg.IsIndex() {
		return strconv.Itoa(seg.Position())
	}
	return seg.Name()
}
