package props

import (
	"reflect"
	"testing"
)

func testSchema() *Compound {
	return NewCompound(
		Field{Name: "transform", Type: NewCompound(
			Field{Name: "position", Type: NewCompound(
				Field{Name: "x", Type: NewLeaf(0.0, WithSequencable())},
				Field{Name: "y", Type: NewLeaf(0.0, WithSequencable())},
			)},
			Field{Name: "rotation", Type: NewLeaf(0.0, WithSequencable())},
		)},
		Field{Name: "label", Type: NewLeaf("untitled")},
		Field{Name: "meta", Type: NewCompound()},
	)
}

func TestResolveLeaf(t *testing.T) {
	schema := testSchema()

	leaf, ok := ResolveLeaf(schema, Ptr("transform", "position", "x"))
	if !ok {
		t.Fatal("expected transform.position.x to resolve")
	}
	if !leaf.Sequencable() {
		t.Error("expected transform.position.x to be sequencable")
	}

	if _, ok := ResolveLeaf(schema, Ptr("label")); !ok {
		t.Error("expected label to resolve")
	}

	cases := map[string]Pointer{
		"missing intermediate":    Ptr("transform", "scale", "x"),
		"missing leaf":            Ptr("transform", "position", "z"),
		"terminates on compound":  Ptr("transform", "position"),
		"descends through leaf":   Ptr("label", "x"),
		"index segment":           Ptr("transform", 0),
		"empty pointer (is root)": {},
	}
	for name, p := range cases {
		if _, ok := ResolveLeaf(schema, p); ok {
			t.Errorf("%s: expected %v not to resolve", name, p)
		}
	}

	if _, ok := ResolveLeaf(nil, Ptr("label")); ok {
		t.Error("nil schema must not resolve")
	}
}

func TestCanonicalOrderPreOrder(t *testing.T) {
	order := CanonicalOrder(testSchema())

	want := map[string]int{
		Ptr("transform", "position", "x").Encode(): 0,
		Ptr("transform", "position", "y").Encode(): 1,
		Ptr("transform", "rotation").Encode():      2,
	}
	if !reflect.DeepEqual(want, order) {
		t.Errorf("canonical order mismatch:\nwant: %v\n got: %v", want, order)
	}
}

func TestCanonicalOrderSkipsNonSequencable(t *testing.T) {
	order := CanonicalOrder(testSchema())
	if _, ok := order[Ptr("label").Encode()]; ok {
		t.Error("non-sequencable leaf must not receive an order index")
	}
}

func TestDefaults(t *testing.T) {
	got := Defaults(testSchema())
	want := map[string]any{
		"transform": map[string]any{
			"position": map[string]any{"x": 0.0, "y": 0.0},
			"rotation": 0.0,
		},
		"label": "untitled",
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("defaults mismatch:\nwant: %#v\n got: %#v", want, got)
	}
	if _, ok := got["meta"]; ok {
		t.Error("empty compound branch must be pruned from defaults")
	}
}

func TestDefaultsNilSchema(t *testing.T) {
	if got := Defaults(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil tree, got %#v", got)
	}
}

func TestDescribe(t *testing.T) {
	descriptors := Describe(testSchema())

	want := []FieldDescriptor{
		{Path: Ptr("transform", "position", "x").Encode(), Type: "float64", Sequencable: true, Order: 0},
		{Path: Ptr("transform", "position", "y").Encode(), Type: "float64", Sequencable: true, Order: 1},
		{Path: Ptr("transform", "rotation").Encode(), Type: "float64", Sequencable: true, Order: 2},
		{Path: Ptr("label").Encode(), Type: "string", Sequencable: false, Order: -1},
	}
	if !reflect.DeepEqual(want, descriptors) {
		t.Errorf("descriptor mismatch:\nwant: %#v\n got: %#v", want, descriptors)
	}
}

func TestNewCompoundGuards(t *testing.T) {
	expectPanic := func(name string, build func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			build()
		})
	}
	expectPanic("duplicate field", func() {
		NewCompound(
			Field{Name: "x", Type: NewLeaf(0.0)},
			Field{Name: "x", Type: NewLeaf(1.0)},
		)
	})
	expectPanic("empty name", func() {
		NewCompound(Field{Name: "", Type: NewLeaf(0.0)})
	})
	expectPanic("nil type", func() {
		NewCompound(Field{Name: "x"})
	})
}
