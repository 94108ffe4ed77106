// Package hydrate decodes persisted raw JSON blobs into the nested map shape
// the props engine sanitizes. Hooks let callers normalise legacy payloads
// before any sanitize rule sees them.
package hydrate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Context identifies the blob being decoded, for hook errors.
type Context struct {
	Key string
}

// PreHook mutates or normalises the decoded payload before it is returned.
type PreHook func(Context, map[string]any) (map[string]any, error)

// DecoderOption configures a Decoder instance.
type DecoderOption func(*Decoder)

// Decoder converts raw override blobs into nested maps.
type Decoder struct {
	preHooks  []PreHook
	useNumber bool
}

// WithPreHook applies hook after decoding, in registration order.
func WithPreHook(hook PreHook) DecoderOption {
	return func(d *Decoder) {
		if hook != nil {
			d.preHooks = append(d.preHooks, hook)
		}
	}
}

// WithUseNumber enables json.Decoder.UseNumber so numeric precision survives
// until a sanitize rule decides how to coerce.
func WithUseNumber() DecoderOption {
	return func(d *Decoder) {
		d.useNumber = true
	}
}

// NewDecoder builds a decoder with the supplied options.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode parses payload into a nested map and runs the configured hooks.
func (d *Decoder) Decode(ctx Context, payload []byte) (map[string]any, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("hydrate: payload is empty for key %q", ctx.Key)
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	if d.useNumber {
		decoder.UseNumber()
	}
	var current map[string]any
	if err := decoder.Decode(&current); err != nil {
		return nil, fmt.Errorf("hydrate: decode key %q: %w", ctx.Key, err)
	}

	for _, hook := range d.preHooks {
		next, err := hook(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("hydrate: pre-hook for key %q failed: %w", ctx.Key, err)
		}
		if next != nil {
			current = next
		}
	}
	return current, nil
}

// DecodeMap is the default decode used for override blobs: no hooks, plain
// float64 numbers.
func DecodeMap(payload []byte) (map[string]any, error) {
	return NewDecoder().Decode(Context{}, payload)
}
