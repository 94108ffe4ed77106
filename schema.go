package props

import "fmt"

// ResolveLeaf walks root by consuming pointer segments one compound level at
// a time. ok is false when an intermediate segment is absent, when the
// pointer carries an index segment (compounds key children by name), or when
// the pointer terminates on a compound rather than a leaf.
func ResolveLeaf(root *Compound, p Pointer) (*Leaf, bool) {
	if root == nil {
		return nil, false
	}
	var current PropType = root
	for _, seg := range p {
		compound, ok := current.(*Compound)
		if !ok {
			return nil, false
		}
		if seg.IsIndex() {
			return nil, false
		}
		child, ok := compound.Field(seg.Name())
		if !ok {
			return nil, false
		}
		current = child
	}
	leaf, ok := current.(*Leaf)
	return leaf, ok
}

// CanonicalOrder assigns every sequencable leaf its pre-order index within
// the schema, visiting compound children in declared order and counting from
// zero. The mapping is keyed by encoded pointer and is the single source of
// truth for how sequenced props are ordered downstream. Schemas are immutable,
// so the mapping only needs recomputing when the schema reference changes.
func CanonicalOrder(root *Compound) map[string]int {
	order := map[string]int{}
	if root == nil {
		return order
	}
	next := 0
	var walk func(c *Compound, prefix Pointer)
	walk = func(c *Compound, prefix Pointer) {
		for _, f := range c.fields {
			p := append(append(Pointer{}, prefix...), Key(f.Name))
			switch node := f.Type.(type) {
			case *Compound:
				walk(node, p)
			case *Leaf:
				if node.Sequencable() {
					order[p.Encode()] = next
					next++
				}
			}
		}
	}
	walk(root, nil)
	return order
}

// Defaults mirrors the schema's compound structure, substituting each leaf's
// default. Compound branches that contain no leaves are pruned; the result
// never carries empty objects.
func Defaults(root *Compound) map[string]any {
	out := map[string]any{}
	if root == nil {
		return out
	}
	for _, f := range root.fields {
		switch node := f.Type.(type) {
		case *Compound:
			child := Defaults(node)
			if len(child) > 0 {
				out[f.Name] = child
			}
		case *Leaf:
			out[f.Name] = node.Default()
		}
	}
	return out
}

// FieldDescriptor describes one leaf for introspection consumers.
type FieldDescriptor struct {
	Path        string // encoded pointer to the leaf
	Type        string // value type inferred from the default
	Sequencable bool
	Order       int // canonical index, -1 for non-sequencable leaves
}

// Describe flattens the schema into leaf descriptors in pre-order, carrying
// each sequencable leaf's canonical index.
func Describe(root *Compound) []FieldDescriptor {
	descriptors := []FieldDescriptor{}
	if root == nil {
		return descriptors
	}
	order := CanonicalOrder(root)
	var walk func(c *Compound, prefix Pointer)
	walk = func(c *Compound, prefix Pointer) {
		for _, f := range c.fields {
			p := append(append(Pointer{}, prefix...), Key(f.Name))
			switch node := f.Type.(type) {
			case *Compound:
				walk(node, p)
			case *Leaf:
				key := p.Encode()
				d := FieldDescriptor{
					Path:        key,
					Type:        typeName(node.Default()),
					Sequencable: node.Sequencable(),
					Order:       -1,
				}
				if idx, ok := order[key]; ok {
					d.Order = idx
				}
				descriptors = append(descriptors, d)
			}
		}
	}
	walk(root, nil)
	return descriptors
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
