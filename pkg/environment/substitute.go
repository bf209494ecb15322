package environment

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/docerr"
	"github.com/bytedance/sonic"
)

// codec serializes values for structural substitution. Numbers decode as
// json.Number so large integers survive the round trip, and <, >, & are left
// unescaped so placeholders containing them are still found in the text.
var codec = sonic.Config{
	UseNumber:  true,
	EscapeHTML: false,
}.Froze()

// EscapeValue backslash-escapes double quotes so a value can be inserted
// inside a serialized JSON string.
func EscapeValue(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}

// SubstituteText replaces every {{KEY}} in text with its escaped value.
// Keys are applied in environment order, one global replace per key.
func SubstituteText(text string, env *Environment) string {
	if !env.Active() {
		return text
	}
	for _, v := range env.Values {
		text = strings.ReplaceAll(text, "{{"+v.Key+"}}", EscapeValue(v.Value))
	}
	return text
}

// SubstituteStructure serializes v, substitutes placeholders in the text and
// decodes the result back into a fresh T. Text that no longer decodes is
// reported as a *docerr.SubstitutionError.
func SubstituteStructure[T any](v T, env *Environment) (T, error) {
	var out T
	if !env.Active() {
		return v, nil
	}

	text, err := codec.MarshalToString(v)
	if err != nil {
		return out, fmt.Errorf("failed to serialize %T for substitution: %w", v, err)
	}

	text = SubstituteText(text, env)

	if err := codec.UnmarshalFromString(text, &out); err != nil {
		return out, &docerr.SubstitutionError{Shape: fmt.Sprintf("%T", v), Cause: err}
	}
	return out, nil
}
