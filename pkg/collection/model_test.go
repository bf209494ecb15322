package collection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_UnmarshalStringForm(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"name": "ping", "request": "https://example.test/ping"}`), &item))

	require.NotNil(t, item.Request)
	require.NotNil(t, item.Request.URL)
	assert.Equal(t, "https://example.test/ping", *item.Request.URL.Raw)
	assert.Nil(t, item.Request.Method)
	assert.False(t, item.IsFolder())
}

func TestURL_UnmarshalForms(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRaw   string
		wantQuery int
		wantVars  int
	}{
		{
			name:    "string",
			input:   `"{{HOST}}/users"`,
			wantRaw: "{{HOST}}/users",
		},
		{
			name:      "object",
			input:     `{"raw": "{{HOST}}/users/:id?limit=1", "query": [{"key": "limit", "value": "1"}], "variable": [{"key": "id"}]}`,
			wantRaw:   "{{HOST}}/users/:id?limit=1",
			wantQuery: 1,
			wantVars:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u URL
			require.NoError(t, json.Unmarshal([]byte(tt.input), &u))
			require.NotNil(t, u.Raw)
			assert.Equal(t, tt.wantRaw, *u.Raw)
			assert.Len(t, u.Query, tt.wantQuery)
			assert.Len(t, u.Variable, tt.wantVars)
		})
	}
}

func TestItem_IsFolder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"nested items", `{"name": "f", "item": [{"name": "r", "request": {}}]}`, true},
		{"empty items", `{"name": "f", "item": []}`, true},
		{"null items", `{"name": "r", "item": null, "request": {}}`, false},
		{"request", `{"name": "r", "request": {"method": "GET"}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item Item
			require.NoError(t, json.Unmarshal([]byte(tt.input), &item))
			assert.Equal(t, tt.want, item.IsFolder())
		})
	}
}

func TestBody_CollectsKeyValueLists(t *testing.T) {
	input := `{
		"mode": "urlencoded",
		"urlencoded": [
			{"key": "key1", "value": "value1", "description": "test description 1"},
			{"key": "key2", "value": "<string>"}
		],
		"options": {"raw": {"language": "json"}}
	}`

	var b Body
	require.NoError(t, json.Unmarshal([]byte(input), &b))

	require.NotNil(t, b.Mode)
	assert.Equal(t, "urlencoded", *b.Mode)
	assert.Nil(t, b.Raw)

	list, ok := b.Lookup("urlencoded")
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "key1", list[0].Key.String())
	assert.Equal(t, "<string>", list[1].Value.String())

	_, ok = b.Lookup("options")
	assert.False(t, ok)
}

func TestBody_MarshalRoundTrip(t *testing.T) {
	input := `{"mode": "raw", "raw": "{\"name\": \"<b>{{NAME}}</b>\"}"}`

	var b Body
	require.NoError(t, json.Unmarshal([]byte(input), &b))

	out, err := marshalNoEscape(b)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<b>{{NAME}}</b>")

	var again Body
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, b, again)
}

func TestDescription_Forms(t *testing.T) {
	var plain, structured Description
	require.NoError(t, json.Unmarshal([]byte(`"Sample query description"`), &plain))
	require.NoError(t, json.Unmarshal([]byte(`{"content": "Host name", "type": "text/plain"}`), &structured))

	assert.Equal(t, "Sample query description", plain.Content)
	assert.Equal(t, "Host name", structured.Content)
	assert.Equal(t, "text/plain", structured.Type)
}

func TestText_Scalars(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"value"`, "value"},
		{`5964`, "5964"},
		{`true`, "true"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var text Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &text))
			assert.Equal(t, tt.want, text.String())
		})
	}
}

func TestKeyValues_StringHeaderIsAbsent(t *testing.T) {
	var r Request
	require.NoError(t, json.Unmarshal([]byte(`{"method": "GET", "header": "Accept: */*"}`), &r))
	assert.Nil(t, r.Header)
}
