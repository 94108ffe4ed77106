package props

import (
	"errors"
	"testing"
)

func TestPointerRoundTrip(t *testing.T) {
	pointers := []Pointer{
		{},
		Ptr("transform"),
		Ptr("transform", "position", "x"),
		Ptr("layers", 0, "opacity"),
		Ptr("a b", "c\"d", 42),
	}
	for _, p := range pointers {
		t.Run(p.Encode(), func(t *testing.T) {
			decoded, err := DecodePointer(p.Encode())
			if err != nil {
				t.Fatalf("decode(encode(%v)): %v", p, err)
			}
			if !decoded.Equal(p) {
				t.Errorf("round trip mismatch: want %v, got %v", p, decoded)
			}
		})
	}
}

func TestDecodePointerMalformed(t *testing.T) {
	keys := []string{
		"",
		"not json",
		`{"a":1}`,
		`"transform"`,
		`["transform",true]`,
		`["transform",1.5]`,
		`[["nested"]]`,
		`["transform"] trailing`,
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			if _, err := DecodePointer(key); !errors.Is(err, ErrMalformedPath) {
				t.Errorf("expected ErrMalformedPath for %q, got %v", key, err)
			}
		})
	}
}

func TestDecodePointerKeepsOffendingKey(t *testing.T) {
	_, err := DecodePointer("not json")
	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *PathError, got %T", err)
	}
	if pathErr.Key != "not json" {
		t.Errorf("expected offending key to be retained, got %q", pathErr.Key)
	}
}

func TestPointerEqual(t *testing.T) {
	if !Ptr("a", 1).Equal(Ptr("a", 1)) {
		t.Error("identical pointers must compare equal")
	}
	if Ptr("a").Equal(Ptr("a", "b")) {
		t.Error("prefix must not compare equal to longer pointer")
	}
	if Ptr("a").Equal(Ptr(0)) {
		t.Error("key segment must not equal index segment")
	}
	// "1" as a key and 1 as an index occupy different segment kinds
	if Ptr("1").Equal(Ptr(1)) {
		t.Error(`key "1" must not equal index 1`)
	}
}
