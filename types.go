package props

import (
	"encoding/json"
	"fmt"
)

// PropType is a node in a property schema tree: either a *Compound grouping
// named children or a *Leaf describing one configurable value. Schemas are
// immutable value objects; reconfiguration swaps the whole tree.
type PropType interface {
	isPropType()
}

// SanitizeFunc converts raw JSON-shaped input into the leaf's value shape,
// performing its own coercion and validation. ok reports whether raw was
// accepted; rejected input is treated as absent, never as an error.
type SanitizeFunc func(raw any) (any, bool)

// Field pairs a name with its prop type inside a compound.
type Field struct {
	Name string
	Type PropType
}

// Compound groups named child props in a declared, stable order. The declared
// order drives both default-value derivation and the canonical ordering of
// sequencable leaves.
type Compound struct {
	fields []Field
	byName map[string]int
}

// NewCompound builds a compound from fields in declared order. Duplicate
// field names and nil types are schema-author errors and panic.
func NewCompound(fields ...Field) *Compound {
	c := &Compound{
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			panic("props: compound field name must not be empty")
		}
		if f.Type == nil {
			panic(fmt.Sprintf("props: compound field %q has nil type", f.Name))
		}
		if _, exists := c.byName[f.Name]; exists {
			panic(fmt.Sprintf("props: compound field %q declared twice", f.Name))
		}
		c.byName[f.Name] = len(c.fields)
		c.fields = append(c.fields, f)
	}
	return c
}

func (c *Compound) isPropType() {}

// Fields returns the children in declared order.
func (c *Compound) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Field looks up a child by name.
func (c *Compound) Field(name string) (PropType, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.fields[i].Type, true
}

// Deserialize applies the schema's sanitize rules to a raw nested value,
// keeping only leaves whose rule accepts the input. Compound branches that
// end up empty are pruned. ok is false when raw is not an object.
func (c *Compound) Deserialize(raw any) (map[string]any, bool) {
	source, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	out := map[string]any{}
	for _, f := range c.fields {
		rawChild, present := source[f.Name]
		if !present {
			continue
		}
		switch node := f.Type.(type) {
		case *Compound:
			child, ok := node.Deserialize(rawChild)
			if ok && len(child) > 0 {
				out[f.Name] = child
			}
		case *Leaf:
			value, ok := node.Deserialize(rawChild)
			if ok {
				out[f.Name] = value
			}
		}
	}
	return out, true
}

// Leaf describes a single configurable property.
type Leaf struct {
	defaultValue any
	sequencable  bool
	sanitize     SanitizeFunc
}

// LeafOption configures a leaf descriptor.
type LeafOption func(*Leaf)

// WithSequencable marks the leaf as bindable to an external track.
func WithSequencable() LeafOption {
	return func(l *Leaf) {
		l.sequencable = true
	}
}

// WithSanitizer replaces the built-in kind-matching sanitize rule.
func WithSanitizer(fn SanitizeFunc) LeafOption {
	return func(l *Leaf) {
		if fn == nil {
			return
		}
		l.sanitize = fn
	}
}

// NewLeaf builds a leaf descriptor around defaultValue. Without an explicit
// sanitizer the leaf accepts raw input whose JSON kind matches the default's.
func NewLeaf(defaultValue any, opts ...LeafOption) *Leaf {
	l := &Leaf{defaultValue: defaultValue}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if l.sanitize == nil {
		l.sanitize = kindSanitizer(defaultValue)
	}
	return l
}

func (l *Leaf) isPropType() {}

// Default returns the authored default value.
func (l *Leaf) Default() any { return l.defaultValue }

// Sequencable reports whether the leaf may be bound to a track.
func (l *Leaf) Sequencable() bool { return l.sequencable }

// Deserialize runs the leaf's sanitize rule against raw input.
func (l *Leaf) Deserialize(raw any) (any, bool) {
	return l.sanitize(raw)
}

// kindSanitizer accepts raw values of the same JSON kind as the default,
// normalising numbers to float64. Unknown default kinds accept any non-nil
// value as-is.
func kindSanitizer(defaultValue any) SanitizeFunc {
	switch defaultValue.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return func(raw any) (any, bool) {
			return asNumber(raw)
		}
	case string:
		return func(raw any) (any, bool) {
			s, ok := raw.(string)
			return s, ok
		}
	case bool:
		return func(raw any) (any, bool) {
			b, ok := raw.(bool)
			return b, ok
		}
	default:
		return func(raw any) (any, bool) {
			if raw == nil {
				return nil, false
			}
			return raw, true
		}
	}
}

func asNumber(raw any) (any, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		return nil, false
	}
}
