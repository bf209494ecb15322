// Package collection holds the input model of an API collection document
// (Postman collection format v2.1.0) together with its loader and schema validator.
//
// Every field below the collection info is optional. Optional scalars are pointers
// and optional lists are nil slices, so "absent" is never confused with a zero value.
package collection

import (
	"bytes"
	"encoding/json"
)

// Collection is the root of a collection document.
type Collection struct {
	Info Info   `json:"info"`
	Item []Item `json:"item"`
}

// Info carries the collection metadata.
type Info struct {
	Name        string       `json:"name"`
	Description *Description `json:"description,omitempty"`
	Schema      string       `json:"schema"`
}

// Item is either a folder (Item is non-nil) or a request.
type Item struct {
	Name     *string    `json:"name,omitempty"`
	Item     []Item     `json:"item,omitempty"`
	Request  *Request   `json:"request,omitempty"`
	Response []Response `json:"response,omitempty"`
}

// IsFolder reports whether the item groups other items. An empty
// "item" array still makes a folder; only an absent or null one makes a request.
func (i Item) IsFolder() bool {
	return i.Item != nil
}

// Request describes one API call.
type Request struct {
	Method      *string      `json:"method,omitempty"`
	URL         *URL         `json:"url,omitempty"`
	Header      KeyValues    `json:"header,omitempty"`
	Body        *Body        `json:"body,omitempty"`
	Description *Description `json:"description,omitempty"`
}

// UnmarshalJSON accepts the short form where the whole request is a URL string.
func (r *Request) UnmarshalJSON(data []byte) error {
	if isString(data) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*r = Request{URL: &URL{Raw: &raw}}
		return nil
	}
	type plain Request
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Request(p)
	return nil
}

// URL is a request URL. Only the raw text, query and path variables are used.
type URL struct {
	Raw      *string   `json:"raw,omitempty"`
	Query    KeyValues `json:"query,omitempty"`
	Variable KeyValues `json:"variable,omitempty"`
}

// UnmarshalJSON accepts a plain URL string as well as the structured object.
func (u *URL) UnmarshalJSON(data []byte) error {
	if isString(data) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*u = URL{Raw: &raw}
		return nil
	}
	type plain URL
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = URL(p)
	return nil
}

// Body is a request body. Mode names the encoding; Raw holds text bodies and
// Params holds every key-value list found on the body, keyed by its field name
// ("urlencoded", "formdata", ...).
type Body struct {
	Mode   *string
	Raw    *string
	Params map[string]KeyValues
}

// UnmarshalJSON collects mode, raw and every array-valued field of the body.
func (b *Body) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*b = Body{}
	for name, value := range fields {
		switch name {
		case "mode":
			var mode string
			if err := json.Unmarshal(value, &mode); err != nil {
				return err
			}
			b.Mode = &mode
		case "raw":
			if !isString(value) {
				continue
			}
			var raw string
			if err := json.Unmarshal(value, &raw); err != nil {
				return err
			}
			b.Raw = &raw
		default:
			if !isArray(value) {
				continue
			}
			var list KeyValues
			if err := json.Unmarshal(value, &list); err != nil {
				// File uploads and graphql payloads are not key-value lists.
				continue
			}
			if b.Params == nil {
				b.Params = make(map[string]KeyValues)
			}
			b.Params[name] = list
		}
	}
	return nil
}

// MarshalJSON writes the body back in the shape UnmarshalJSON reads.
func (b Body) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Params)+2)
	for name, list := range b.Params {
		out[name] = list
	}
	if b.Mode != nil {
		out["mode"] = *b.Mode
	}
	if b.Raw != nil {
		out["raw"] = *b.Raw
	}
	return marshalNoEscape(out)
}

// Lookup returns the key-value list stored under the given field name.
func (b *Body) Lookup(name string) (KeyValues, bool) {
	list, ok := b.Params[name]
	return list, ok
}

// KeyValue is one header, query parameter, path variable or form field.
type KeyValue struct {
	Key         *Text        `json:"key,omitempty"`
	Value       *Text        `json:"value,omitempty"`
	Description *Description `json:"description,omitempty"`
}

// KeyValues is an ordered list of key-value entries.
type KeyValues []KeyValue

// UnmarshalJSON accepts an array of entries. Any other shape (the
// schema also permits a raw header string) decodes as an absent list.
func (kv *KeyValues) UnmarshalJSON(data []byte) error {
	if !isArray(data) {
		*kv = nil
		return nil
	}
	var list []KeyValue
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*kv = list
	return nil
}

// Description is free text, either a plain string or an object with a content field.
type Description struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (d *Description) UnmarshalJSON(data []byte) error {
	if isString(data) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Description{Content: s}
		return nil
	}
	type plain Description
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Description(p)
	return nil
}

// Response is one captured exchange stored with a request.
type Response struct {
	Name            *string  `json:"name,omitempty"`
	OriginalRequest *Request `json:"originalRequest,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Code            *int     `json:"code,omitempty"`
	Body            *string  `json:"body,omitempty"`
}

// Text is a JSON scalar kept in its textual form. Numbers keep their
// literal spelling so 5964 stays "5964".
type Text string

// UnmarshalJSON decodes strings verbatim and any other value as its JSON text.
func (t *Text) UnmarshalJSON(data []byte) error {
	if isString(data) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*t = ""
		return nil
	}
	*t = Text(trimmed)
	return nil
}

// String returns the text, or "" for a nil receiver.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

func isString(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}

func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

// marshalNoEscape encodes v without turning <, > and & into \u escapes,
// so placeholders containing them stay searchable in the encoded text.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
