package hydrate

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeMap(t *testing.T) {
	got, err := DecodeMap([]byte(`{"a":1,"b":{"c":"x"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"a": 1.0, "b": map[string]any{"c": "x"}}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("decode mismatch:\nwant: %#v\n got: %#v", want, got)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"not json":   []byte(`{broken`),
		"not object": []byte(`[1,2]`),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeMap(payload); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeWithUseNumber(t *testing.T) {
	decoder := NewDecoder(WithUseNumber())
	got, err := decoder.Decode(Context{Key: "scene/hero"}, []byte(`{"n": 9007199254740993}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := got["n"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", got["n"])
	}
	if n.String() != "9007199254740993" {
		t.Errorf("precision lost: %s", n)
	}
}

func TestDecodeWithPreHook(t *testing.T) {
	decoder := NewDecoder(WithPreHook(func(ctx Context, payload map[string]any) (map[string]any, error) {
		// migrate a legacy field name before sanitize rules run
		if legacy, ok := payload["opacity_pct"]; ok {
			payload["opacity"] = legacy
			delete(payload, "opacity_pct")
		}
		return payload, nil
	}))
	got, err := decoder.Decode(Context{}, []byte(`{"opacity_pct": 50}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(map[string]any{"opacity": 50.0}, got) {
		t.Errorf("pre-hook not applied: %#v", got)
	}
}
