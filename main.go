package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/williamokano/schema_validator/pkg/loader"
	"github.com/williamokano/schema_validator/pkg/logger"
	"github.com/williamokano/schema_validator/pkg/report"
	"github.com/williamokano/schema_validator/pkg/validator"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Config holds the settings for one invocation, immutable once parsed.
type Config struct {
	DataPath   string
	SchemaPath string
	DataType   loader.FileType // empty means infer from extension
	SchemaType loader.FileType // empty means infer from extension
	LogLevel   string
	LogFormat  string
}

// pipelineError marks failures from the validation pipeline itself, as
// opposed to CLI misuse.
type pipelineError struct {
	err error
}

func (e *pipelineError) Error() string { return e.err.Error() }

func (e *pipelineError) Unwrap() error { return e.err }

func newRootCommand() *cobra.Command {
	var flags struct {
		dataType   string
		schemaType string
		logLevel   string
		logFormat  string
	}

	cmd := &cobra.Command{
		Use:   "schema_validator <data_file> <schema_file>",
		Short: "Validates API request/response structures against schema definitions",
		Long: `schema_validator checks a JSON or YAML document against a JSON Schema
definition (typically derived from an OpenAPI contract) and reports
success or a precise validation failure.

File types are inferred from the extension (.json, .yaml, .yml) unless
set explicitly with --data_type / --schema_type. The data file and the
schema file may use different formats in the same invocation.`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(args, flags.dataType, flags.schemaType, flags.logLevel, flags.logFormat)
			if err != nil {
				return err
			}

			logger.Init(cfg.LogLevel, cfg.LogFormat)

			if err := run(cmd, cfg); err != nil {
				return &pipelineError{err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.dataType, "data_type", "", "data file type: json or yaml (inferred from extension if omitted)")
	cmd.Flags().StringVar(&flags.schemaType, "schema_type", "", "schema file type: json or yaml (inferred from extension if omitted)")
	cmd.Flags().StringVar(&flags.logLevel, "log_level", "INFO", "log level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	cmd.Flags().StringVar(&flags.logFormat, "log_format", "console", "log format: json or console")

	return cmd
}

func parseConfig(args []string, dataType, schemaType, logLevel, logFormat string) (Config, error) {
	cfg := Config{
		DataPath:   args[0],
		SchemaPath: args[1],
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	}

	if dataType != "" {
		t, err := loader.ParseFileType(dataType)
		if err != nil {
			return Config{}, fmt.Errorf("invalid --data_type %q (choose json or yaml)", dataType)
		}
		cfg.DataType = t
	}

	if schemaType != "" {
		t, err := loader.ParseFileType(schemaType)
		if err != nil {
			return Config{}, fmt.Errorf("invalid --schema_type %q (choose json or yaml)", schemaType)
		}
		cfg.SchemaType = t
	}

	if _, err := logger.ParseLevel(logLevel); err != nil {
		return Config{}, fmt.Errorf("invalid --log_level %q (choose DEBUG, INFO, WARNING, ERROR or CRITICAL)", logLevel)
	}

	if logFormat != "json" && logFormat != "console" {
		return Config{}, fmt.Errorf("invalid --log_format %q (choose json or console)", logFormat)
	}

	return cfg, nil
}

// run executes the load/validate pipeline for one invocation.
func run(cmd *cobra.Command, cfg Config) error {
	log := logger.Get()
	log.Debug().
		Str("data_file", cfg.DataPath).
		Str("schema_file", cfg.SchemaPath).
		Msg("starting validation")

	data, err := loader.Load(cfg.DataPath, cfg.DataType)
	if err != nil {
		return err
	}

	schema, err := loader.Load(cfg.SchemaPath, cfg.SchemaType)
	if err != nil {
		return err
	}

	if err := validator.Validate(data, schema); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.SuccessMessage)
	return nil
}

// execute runs the command and maps the outcome to an exit code: 0 on
// success, 1 on any pipeline failure, 2 on CLI misuse.
func execute(cmd *cobra.Command, stdout, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return report.ExitSuccess
	}

	var perr *pipelineError
	if errors.As(err, &perr) {
		fmt.Fprintln(stdout, report.Message(perr.Unwrap()))
		return report.ExitFailure
	}

	// CLI misuse: missing arguments or an invalid flag value
	fmt.Fprintln(stderr, "Error:", err)
	fmt.Fprintln(stderr, cmd.UsageString())
	return report.ExitUsage
}

func main() {
	os.Exit(execute(newRootCommand(), os.Stdout, os.Stderr))
}
