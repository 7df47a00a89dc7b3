package validator

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/williamokano/schema_validator/pkg/logger"
)

// Violation is a single mismatch between the document and the schema,
// localized to a field path within the document.
type Violation struct {
	Field       string
	Description string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// ValidationError reports that the document does not conform to the schema.
// Violations preserves the engine's reporting order and is never empty.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}
	return fmt.Sprintf("document has %d violation(s): %s", len(e.Violations), strings.Join(lines, "; "))
}

// SchemaError reports that the schema document is not itself a valid schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string { return fmt.Sprintf("invalid schema: %v", e.Err) }

func (e *SchemaError) Unwrap() error { return e.Err }

// Validate checks document against schema. Both are generic trees as
// produced by loader.Load. Returns nil on success, *ValidationError when
// the document does not conform and *SchemaError when the schema itself
// is invalid.
func Validate(document, schema any) error {
	log := logger.Get()

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		serr := &SchemaError{Err: err}
		log.Error().Err(err).Msg("schema validation failed")
		return serr
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		log.Error().Err(err).Msg("an unexpected error occurred during validation")
		return fmt.Errorf("validation failed: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Violations = append(verr.Violations, Violation{
				Field:       desc.Field(),
				Description: desc.Description(),
			})
		}
		log.Error().Int("violations", len(verr.Violations)).Msg("data validation failed")
		return verr
	}

	log.Info().Msg("data validation successful")
	return nil
}
