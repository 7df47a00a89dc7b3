// Package report maps pipeline outcomes to the user-facing result message
// and process exit code.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/williamokano/schema_validator/pkg/loader"
	"github.com/williamokano/schema_validator/pkg/validator"
)

// Every failure category exits 1; callers scripting against the tool can
// only distinguish categories by the message prefix. ExitUsage is reserved
// for CLI misuse (missing arguments, invalid flag values).
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// SuccessMessage is printed to stdout when validation passes.
const SuccessMessage = "Validation successful!"

// Message maps a pipeline outcome to the line(s) printed on stdout.
func Message(err error) string {
	if err == nil {
		return SuccessMessage
	}

	var serr *validator.SchemaError
	var verr *validator.ValidationError

	switch {
	case errors.As(err, &serr):
		return fmt.Sprintf("Schema Error: %v", serr)
	case errors.As(err, &verr):
		var b strings.Builder
		b.WriteString("Validation Error: data does not conform to the schema")
		for _, v := range verr.Violations {
			fmt.Fprintf(&b, "\n  - %s", v)
		}
		return b.String()
	case errors.Is(err, loader.ErrNotFound),
		errors.Is(err, loader.ErrUnsupportedType),
		loader.IsParseError(err):
		return fmt.Sprintf("Error: %v", err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}
