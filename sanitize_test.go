package props

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExpressionSanitizer(t *testing.T) {
	sanitize, err := ExpressionSanitizer(NewExprEvaluator(), "raw < 0 ? defaultValue : raw",
		SanitizerWithDefault(0.0),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if value, ok := sanitize(-3.0); !ok || value != 0.0 {
		t.Errorf("expected (0.0, true), got (%v, %v)", value, ok)
	}
	if value, ok := sanitize(2.0); !ok || value != 2.0 {
		t.Errorf("expected (2.0, true), got (%v, %v)", value, ok)
	}
}

func TestExpressionSanitizerRejectsWithNil(t *testing.T) {
	sanitize, err := ExpressionSanitizer(NewExprEvaluator(), `raw >= 0 ? raw : nil`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sanitize(-1.0); ok {
		t.Error("nil expression result must reject the input")
	}
}

func TestExpressionSanitizerErrorRejectsAndReports(t *testing.T) {
	var diagnostics []Diagnostic
	sanitize, err := ExpressionSanitizer(NewExprEvaluator(), "raw.missing",
		SanitizerWithPath(Ptr("opacity").Encode()),
		SanitizerWithLogger(DiagnosticLoggerFunc(func(d Diagnostic) { diagnostics = append(diagnostics, d) })),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sanitize(1.0); ok {
		t.Error("evaluation error must reject the input")
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diagnostics))
	}
	if diagnostics[0].Key != Ptr("opacity").Encode() {
		t.Errorf("diagnostic must carry the leaf path, got %q", diagnostics[0].Key)
	}
}

func TestExpressionSanitizerRequiresEvaluator(t *testing.T) {
	if _, err := ExpressionSanitizer(nil, "raw"); err == nil {
		t.Error("expected error for nil evaluator")
	}
}

// A broken sanitize rule on one leaf must not take its siblings down.
func TestExpressionSanitizerInSchema(t *testing.T) {
	evaluator := NewExprEvaluator(ExprWithProgramCache(NewProgramCache()))
	clamp, err := ExpressionSanitizer(evaluator, "raw < 0 ? 0.0 : raw", SanitizerWithDefault(0.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	broken, err := ExpressionSanitizer(evaluator, "raw.missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	schema := NewCompound(
		Field{Name: "opacity", Type: NewLeaf(1.0, WithSanitizer(clamp))},
		Field{Name: "blur", Type: NewLeaf(0.0, WithSanitizer(broken))},
		Field{Name: "label", Type: NewLeaf("untitled")},
	)
	got, err := StaticValues(schema, json.RawMessage(`{"opacity": -4, "blur": 2, "label": "fx"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"opacity": 0.0, "label": "fx"}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("static values mismatch:\nwant: %#v\n got: %#v", want, got)
	}
}
