package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/williamokano/schema_validator/pkg/loader"
	"github.com/williamokano/schema_validator/pkg/validator"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "success",
			err:  nil,
			want: "Validation successful!",
		},
		{
			name: "file not found",
			err:  fmt.Errorf("%w: /tmp/missing.json", loader.ErrNotFound),
			want: "Error: file not found: /tmp/missing.json",
		},
		{
			name: "unsupported file type",
			err:  fmt.Errorf("%w: txt (must be json or yaml/yml)", loader.ErrUnsupportedType),
			want: "Error: unsupported file type: txt (must be json or yaml/yml)",
		},
		{
			name: "schema error",
			err:  &validator.SchemaError{Err: errors.New("has a primitive type that is NOT VALID")},
			want: "Schema Error: invalid schema: has a primitive type that is NOT VALID",
		},
		{
			name: "unexpected error",
			err:  errors.New("something broke"),
			want: "An unexpected error occurred: something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestMessageParseError(t *testing.T) {
	perr := &loader.ParseError{
		Path:   "data.json",
		Format: loader.TypeJSON,
		Line:   1,
		Column: 10,
		Err:    errors.New("invalid character '}'"),
	}

	got := Message(perr)
	assert.Contains(t, got, "Error: ")
	assert.Contains(t, got, "data.json")
	assert.NotContains(t, got, "unexpected")
}

func TestMessageListsAllViolations(t *testing.T) {
	verr := &validator.ValidationError{Violations: []validator.Violation{
		{Field: "age", Description: "Invalid type. Expected: integer, given: string"},
		{Field: "(root)", Description: "name is required"},
	}}

	got := Message(verr)
	assert.Contains(t, got, "Validation Error: ")
	assert.Contains(t, got, "age: Invalid type. Expected: integer, given: string")
	assert.Contains(t, got, "name is required")
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitFailure)
	assert.Equal(t, 2, ExitUsage)
}
