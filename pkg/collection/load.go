package collection

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/blackcoderx/postdoc/pkg/docerr"
	"github.com/xeipuuv/gojsonschema"
)

// SchemaFile is the embedded schema every collection is validated against.
const SchemaFile = "schemas/collection_v2.1.0.json"

//go:embed schemas/*.json
var schemas embed.FS

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	data, err := schemas.ReadFile(SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile collection schema: %w", err)
	}
	return schema, nil
})

// Load reads, validates and decodes the collection file at path.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &docerr.IOError{Op: "read", Path: path, Cause: err}
	}
	return Parse(path, data)
}

// Parse validates data against the collection schema and decodes it.
// source only labels errors.
func Parse(source string, data []byte) (*Collection, error) {
	if err := Validate(source, data); err != nil {
		return nil, err
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &docerr.SchemaError{Source: source, Cause: err}
	}

	if c.Info.Name == "" {
		return nil, &docerr.MissingFieldError{Field: "info.name"}
	}
	if c.Info.Schema == "" {
		return nil, &docerr.MissingFieldError{Field: "info.schema"}
	}
	return &c, nil
}

// Validate checks data against the embedded collection schema. A document
// that is not JSON at all is reported as a schema violation too.
func Validate(source string, data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &docerr.SchemaError{Source: source, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]docerr.Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, docerr.Violation{
			Path:    re.Field(),
			Message: re.Description(),
		})
	}
	return &docerr.SchemaError{Source: source, Violations: violations}
}
