package domain

import "encoding/json"

// Meta carries the opaque "_meta" object permitted on most request and
// notification params by the JSON-RPC 2.0 base spec. This library never
// interprets its contents — it decodes to the raw object bytes and
// re-encodes them unchanged, byte-for-byte, so a codec round-trip never
// perturbs a key an embedder (or a future version of this library) relies
// on.
//
// A small set of W3C trace-context keys (traceparent, tracestate, baggage)
// are listed by name in TraceContextKeys; no validator lane reads them,
// and their values are never validated or rewritten.
type Meta struct {
	raw json.RawMessage
}

// TraceContextKeys lists the W3C trace-context keys this library is aware
// of inside an opaque _meta object, for reporting purposes only.
var TraceContextKeys = []string{"traceparent", "tracestate", "baggage"}

// NewMeta wraps a raw JSON object as Meta. data should be a JSON object or
// null; its shape is not checked here, and neither the codec nor the
// validator rejects or reports a non-object _meta.
func NewMeta(data json.RawMessage) Meta {
	return Meta{raw: append(json.RawMessage(nil), data...)}
}

// IsZero reports whether no _meta object was present on the wire at all
// (distinct from an explicit empty object "{}").
func (m Meta) IsZero() bool { return m.raw == nil }

// Raw returns the exact bytes decoded from the wire.
func (m Meta) Raw() json.RawMessage { return m.raw }

// Keys returns the top-level keys of the _meta object, or nil if it isn't
// a JSON object (including if it is absent or null).
func (m Meta) Keys() []string {
	if len(m.raw) == 0 {
		return nil
	}
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(m.raw, &asMap); err != nil {
		return nil
	}
	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}
	return keys
}

// MarshalJSON re-emits the exact bytes captured on decode.
func (m Meta) MarshalJSON() ([]byte, error) {
	if m.raw == nil {
		return []byte("null"), nil
	}
	return m.raw, nil
}

// UnmarshalJSON captures the exact bytes of the incoming _meta value.
func (m *Meta) UnmarshalJSON(data []byte) error {
	m.raw = append(json.RawMessage(nil), data...)
	return nil
}
