package docgen

import (
	"encoding/json"
	"testing"

	"github.com/blackcoderx/postdoc/pkg/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, doc string) *collection.Body {
	t.Helper()
	var b collection.Body
	require.NoError(t, json.Unmarshal([]byte(doc), &b))
	return &b
}

func TestNewBody_URLEncoded(t *testing.T) {
	body := NewBody(decodeBody(t, `{
		"mode": "urlencoded",
		"urlencoded": [
			{"key": "key1", "value": "value1", "description": "test description 1"},
			{"key": "key2", "value": "<string>"}
		]
	}`))

	require.NotNil(t, body)
	assert.Equal(t, "urlencoded", body.Mode)
	assert.Nil(t, body.Raw)
	require.Len(t, body.KeyValues, 2)

	assert.Equal(t, "key1", body.KeyValues[0].Key)
	assert.Equal(t, "value1", body.KeyValues[0].Value)
	assert.Equal(t, "test description 1", *body.KeyValues[0].Description)

	assert.Equal(t, "key2", body.KeyValues[1].Key)
	assert.Equal(t, "&lt;string&gt;", body.KeyValues[1].Value)
	assert.Nil(t, body.KeyValues[1].Description)
}

func TestNewBody_Raw(t *testing.T) {
	body := NewBody(decodeBody(t, `{"mode": "raw", "raw": "{\"id\": null}", "options": {"raw": {"language": "json"}}}`))

	assert.Equal(t, "raw", body.Mode)
	assert.Nil(t, body.KeyValues)
	assert.Equal(t, `{"id": null}`, *body.Raw)
}

func TestNewBody_ModeDrivesLookup(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantMode string
		wantKVs  int
	}{
		{"formdata", `{"mode": "formdata", "formdata": [{"key": "file", "value": "x"}]}`, "formdata", 1},
		{"mode names another field", `{"mode": "formdata", "urlencoded": [{"key": "a"}]}`, "formdata", 0},
		{"unknown mode", `{"mode": "graphql", "graphql": {"query": "{ me }"}}`, "graphql", 0},
		{"empty list", `{"mode": "urlencoded", "urlencoded": []}`, "urlencoded", 0},
		{"no mode", `{}`, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewBody(decodeBody(t, tt.doc))
			require.NotNil(t, body)
			assert.Equal(t, tt.wantMode, body.Mode)
			assert.Nil(t, body.Raw)
			assert.Len(t, body.KeyValues, tt.wantKVs)
			if tt.wantKVs == 0 {
				assert.Nil(t, body.KeyValues)
			}
		})
	}
}

func TestNewBody_Nil(t *testing.T) {
	assert.Nil(t, NewBody(nil))
}

func TestNewKeyValues(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, NewKeyValues(nil))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, NewKeyValues(collection.KeyValues{}))
	})

	t.Run("string description", func(t *testing.T) {
		var list collection.KeyValues
		require.NoError(t, json.Unmarshal([]byte(`[{"key": "q", "value": "v", "description": "say \"<hi>\""}]`), &list))

		kvs := NewKeyValues(list)
		require.Len(t, kvs, 1)
		assert.Equal(t, `say \"&lt;hi&gt;\"`, *kvs[0].Description)
	})

	t.Run("structured description", func(t *testing.T) {
		var list collection.KeyValues
		require.NoError(t, json.Unmarshal([]byte(`[{"key": "id", "value": 42, "description": {"content": "The id", "type": "text/plain"}}]`), &list))

		kvs := NewKeyValues(list)
		require.Len(t, kvs, 1)
		assert.Equal(t, "id", kvs[0].Key)
		assert.Equal(t, "42", kvs[0].Value)
		assert.Equal(t, "The id", *kvs[0].Description)
	})
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a \"b\" &lt;c&gt; & d`, Escape(`a "b" <c> & d`))
}
