package props

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Segment is one step in a pointer: an object key or an array index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// Key builds a key segment addressing a named child of a compound.
func Key(name string) Segment {
	return Segment{key: name}
}

// Index builds an index segment. Schemas key children by name, so index
// segments never resolve to a leaf, but stored keys may legally contain them
// and the codec round-trips them.
func Index(i int) Segment {
	return Segment{index: i, isIdx: true}
}

// IsIndex reports whether the segment addresses an array position.
func (s Segment) IsIndex() bool { return s.isIdx }

// Name returns the object key for key segments, "" otherwise.
func (s Segment) Name() string { return s.key }

// Position returns the array index for index segments, 0 otherwise.
func (s Segment) Position() int { return s.index }

func (s Segment) encoded() any {
	if s.isIdx {
		return s.index
	}
	return s.key
}

// Pointer addresses one leaf prop within a schema tree, root first. Two
// pointers are equal iff their segment sequences are equal.
type Pointer []Segment

// Ptr assembles a pointer from raw segments: strings become key segments and
// ints become index segments. Any other segment type panics, since pointers
// assembled in code are a programmer contract, not external data.
func Ptr(segments ...any) Pointer {
	p := make(Pointer, 0, len(segments))
	for _, seg := range segments {
		switch v := seg.(type) {
		case string:
			p = append(p, Key(v))
		case int:
			p = append(p, Index(v))
		case Segment:
			p = append(p, v)
		default:
			panic(fmt.Sprintf("props: pointer segment must be string or int, got %T", seg))
		}
	}
	return p
}

// Equal reports segment-wise equality.
func (p Pointer) Equal(other Pointer) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Encode serializes the pointer to its flat storage key: a JSON array of
// string and integer segments. Encoding is deterministic and reversible via
// DecodePointer.
func (p Pointer) Encode() string {
	raw := make([]any, len(p))
	for i, seg := range p {
		raw[i] = seg.encoded()
	}
	data, err := json.Marshal(raw)
	if err != nil {
		// strings and ints always marshal
		panic(fmt.Sprintf("props: encode pointer: %v", err))
	}
	return string(data)
}

func (p Pointer) String() string { return p.Encode() }

// DecodePointer parses a stored key back into a pointer. Keys that are not a
// JSON array of string/integer segments fail with an error matching
// ErrMalformedPath; callers processing batches skip the entry and continue.
func DecodePointer(key string) (Pointer, error) {
	dec := json.NewDecoder(strings.NewReader(key))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, malformedPath(key, err)
	}
	if dec.More() {
		return nil, malformedPath(key, fmt.Errorf("trailing data after segment array"))
	}

	p := make(Pointer, 0, len(raw))
	for i, elem := range raw {
		switch v := elem.(type) {
		case string:
			p = append(p, Key(v))
		case json.Number:
			idx, err := v.Int64()
			if err != nil {
				return nil, malformedPath(key, fmt.Errorf("segment %d: index must be an integer", i))
			}
			p = append(p, Index(int(idx)))
		default:
			return nil, malformedPath(key, fmt.Errorf("segment %d: unsupported type %T", i, elem))
		}
	}
	return p, nil
}
