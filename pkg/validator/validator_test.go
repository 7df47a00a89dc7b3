package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer"},
		},
		"required": []any{"name", "age"},
	}
}

func TestValidateSuccess(t *testing.T) {
	document := map[string]any{"name": "John Doe", "age": 30}

	err := Validate(document, personSchema())
	assert.NoError(t, err)
}

func TestValidateTypeMismatch(t *testing.T) {
	document := map[string]any{"name": "John Doe", "age": "30"}

	err := Validate(document, personSchema())
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "age", verr.Violations[0].Field)
	assert.Contains(t, verr.Violations[0].Description, "integer")
}

func TestValidateMissingRequiredField(t *testing.T) {
	document := map[string]any{"name": "John Doe"}

	err := Validate(document, personSchema())
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Violations)
	assert.Contains(t, verr.Error(), "age")
}

func TestValidateAggregatesViolations(t *testing.T) {
	document := map[string]any{"name": 42, "age": "30"}

	err := Validate(document, personSchema())
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}

func TestValidateInvalidSchema(t *testing.T) {
	schema := map[string]any{"type": "not-a-type"}
	document := map[string]any{"name": "John Doe"}

	err := Validate(document, schema)
	require.Error(t, err)

	var serr *SchemaError
	assert.ErrorAs(t, err, &serr)

	// An invalid schema is a distinct category from a data violation
	var verr *ValidationError
	assert.NotErrorAs(t, err, &verr)
}

func TestValidateScalarDocument(t *testing.T) {
	schema := map[string]any{"type": "string"}

	assert.NoError(t, Validate("hello", schema))

	err := Validate(42, schema)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
