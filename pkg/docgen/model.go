// Package docgen turns a validated collection into the documentation model
// consumed by the page renderer: a navigation tree of folders and leaves, and
// one request record per leaf with its examples.
//
// Optional values are pointers and optional lists are nil slices. A nil list
// means the section is absent from the source and is skipped when rendering.
package docgen

import (
	"encoding/json"
	"strconv"
)

const (
	// NotFound replaces a missing name at any level of the tree.
	NotFound = "[NOT FOUND]"
	// FolderIcon is the sidebar icon class of folder nodes.
	FolderIcon = "fas fa-folder"
	// NoMethod labels leaves whose request has no method.
	NoMethod = "None"
)

// TextFilter transforms free text, e.g. Markdown rendering or HTML sanitizing.
type TextFilter func(string) string

// Node is an element of the navigation tree: either a *Folder or a *Leaf.
type Node interface {
	Title() string
	isNode()
}

// Folder groups child nodes. It is never selectable in the sidebar.
type Folder struct {
	Text     string
	Icon     string
	Children []Node
}

func (f *Folder) Title() string { return f.Text }
func (f *Folder) isNode()       {}

// MarshalJSON encodes the folder in the sidebar tree-view format.
func (f *Folder) MarshalJSON() ([]byte, error) {
	children := f.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(struct {
		Text       string `json:"text"`
		Nodes      []Node `json:"nodes"`
		Icon       string `json:"icon"`
		Selectable bool   `json:"selectable"`
	}{f.Text, children, f.Icon, false})
}

// Leaf links to one request record.
type Leaf struct {
	Text   string
	ID     int
	Method string
}

func (l *Leaf) Title() string { return l.Text }
func (l *Leaf) isNode()       {}

// Href is the in-page anchor of the leaf's request record.
func (l *Leaf) Href() string {
	return "#" + strconv.Itoa(l.ID)
}

// MarshalJSON encodes the leaf in the sidebar tree-view format.
func (l *Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text   string `json:"text"`
		Href   string `json:"href"`
		Method string `json:"method"`
	}{l.Text, l.Href(), l.Method})
}

// Collection is the metadata shown in the page header.
type Collection struct {
	Name string
	// Description is sanitized HTML.
	Description *string
	Schema      string
	// FileName and EnvFileName are the base names of the source files,
	// used for download links.
	FileName    string
	EnvFileName *string
}

// Request is the documentation record of one leaf. ID equals the leaf's ID.
type Request struct {
	ID   int
	Name string
	// Description is sanitized HTML.
	Description   *string
	Method        *string
	URL           *string
	Body          *Body
	Headers       []KeyValue
	Params        []KeyValue
	PathVariables []KeyValue
	Examples      []Example
}

// Body is a normalized request body. Raw is set for text bodies and
// KeyValues for key-value encodings; a body with an unknown mode may have neither.
type Body struct {
	Mode      string
	Raw       *string
	KeyValues []KeyValue
}

// KeyValue is an escaped key/value entry.
type KeyValue struct {
	Key         string
	Value       string
	Description *string
}

// Example is one request/response exchange shown for a request.
type Example struct {
	// ID is "response_<n>", unique across the whole run.
	ID string
	// RequestID is the owning request's ID as text.
	RequestID    string
	Name         string
	Method       *string
	URL          *string
	RequestBody  *string
	Status       *string
	Code         *int
	ResponseBody *string
}

// Bundle is everything the page renderer needs.
type Bundle struct {
	Title      string
	Collection Collection
	Tree       []Node
	Requests   []Request
	// Download enables links to the copied source files.
	Download bool
}

// ExampleCount returns the number of examples across all requests.
func (b *Bundle) ExampleCount() int {
	n := 0
	for _, r := range b.Requests {
		n += len(r.Examples)
	}
	return n
}
