package props

import (
	"encoding/json"

	"github.com/goliatone/go-props/internal/hydrate"
)

// StaticValues deserializes the raw override blob through the schema's own
// sanitize rules. Absent input yields an empty, non-nil tree. The returned
// error reports a blob that is not a JSON object; callers treat the blob as
// absent and continue — a bad override blob never blocks other derivations.
func StaticValues(root *Compound, raw json.RawMessage) (map[string]any, error) {
	if root == nil || len(raw) == 0 {
		return map[string]any{}, nil
	}
	decoded, err := hydrate.DecodeMap(raw)
	if err != nil {
		return map[string]any{}, err
	}
	out, ok := root.Deserialize(decoded)
	if !ok || out == nil {
		return map[string]any{}, nil
	}
	return out, nil
}

// ValueAt returns the value under p within a nested value tree. ok is false
// when the path is absent, which is a normal outcome for optional and
// partial trees, not an error. An empty pointer addresses the whole tree.
func ValueAt(tree map[string]any, p Pointer) (any, bool) {
	var current any = tree
	for _, seg := range p {
		if seg.IsIndex() {
			slice, ok := current.([]any)
			if !ok {
				return nil, false
			}
			i := seg.Position()
			if i < 0 || i >= len(slice) {
				return nil, false
			}
			current = slice[i]
			continue
		}
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[seg.Name()]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
