package docgen

import (
	"strings"

	"github.com/blackcoderx/postdoc/pkg/collection"
)

var valueEscaper = strings.NewReplacer(`"`, `\"`, "<", "&lt;", ">", "&gt;")

// Escape makes a key-value value or description safe for the page's
// attribute and text contexts.
func Escape(s string) string {
	return valueEscaper.Replace(s)
}

// NewBody normalizes a source body. Raw text wins; otherwise the key-value
// list stored under the field named by the mode is decoded. The mode itself
// is not checked against a fixed set.
func NewBody(src *collection.Body) *Body {
	if src == nil {
		return nil
	}

	body := &Body{}
	if src.Mode != nil {
		body.Mode = *src.Mode
	}
	if src.Raw != nil {
		raw := *src.Raw
		body.Raw = &raw
		return body
	}
	if list, ok := src.Lookup(body.Mode); ok {
		body.KeyValues = NewKeyValues(list)
	}
	return body
}

// NewKeyValues converts a source list into escaped entries. It returns nil,
// not an empty slice, for an absent or empty list.
func NewKeyValues(src collection.KeyValues) []KeyValue {
	if len(src) == 0 {
		return nil
	}

	out := make([]KeyValue, 0, len(src))
	for _, kv := range src {
		entry := KeyValue{
			Key:   kv.Key.String(),
			Value: Escape(kv.Value.String()),
		}
		if kv.Description != nil {
			desc := Escape(kv.Description.Content)
			entry.Description = &desc
		}
		out = append(out, entry)
	}
	return out
}
