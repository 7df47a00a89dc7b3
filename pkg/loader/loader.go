package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/williamokano/schema_validator/pkg/logger"
)

// FileType identifies the on-disk format of a document file
type FileType string

const (
	TypeJSON FileType = "json"
	TypeYAML FileType = "yaml"
)

// ParseFileType validates a user-supplied type name from the CLI flags.
func ParseFileType(name string) (FileType, error) {
	switch strings.ToLower(name) {
	case "json":
		return TypeJSON, nil
	case "yaml":
		return TypeYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (must be json or yaml)", ErrUnsupportedType, name)
	}
}

// ResolveType picks the format for a file: an explicit type always wins,
// otherwise the extension decides (case-insensitive, .yml counts as yaml).
func ResolveType(path string, explicit FileType) (FileType, error) {
	if explicit != "" {
		return explicit, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "json":
		return TypeJSON, nil
	case "yaml", "yml":
		return TypeYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (must be json or yaml/yml)", ErrUnsupportedType, ext)
	}
}

// Load reads and parses the file at path into a generic document tree
// (maps, slices and scalars). The same call loads data files and schema
// files; only the validator treats them differently.
func Load(path string, explicit FileType) (any, error) {
	log := logger.Get()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		err := fmt.Errorf("%w: %s", ErrNotFound, path)
		log.Error().Str("path", path).Msg("file not found")
		return nil, err
	}

	fileType, err := ResolveType(path, explicit)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("unsupported file type")
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open file")
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if fileType == TypeJSON {
		return decodeJSON(f, path)
	}
	return decodeYAML(f, path)
}

func decodeJSON(r io.Reader, path string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		logger.Get().Error().Err(err).Str("path", path).Msg("failed to read file")
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		perr := newJSONParseError(path, data, err)
		logger.Get().Error().Err(perr).Str("path", path).Msg("error decoding JSON")
		return nil, perr
	}

	// Strict mode: reject trailing content after the top-level value
	if err := dec.Decode(new(any)); err != io.EOF {
		perr := &ParseError{Path: path, Format: TypeJSON, Err: errors.New("trailing content after top-level value")}
		logger.Get().Error().Err(perr).Str("path", path).Msg("error decoding JSON")
		return nil, perr
	}

	return doc, nil
}

func decodeYAML(r io.Reader, path string) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		// An empty document is valid YAML and loads as null
		if err == io.EOF {
			return nil, nil
		}
		perr := &ParseError{Path: path, Format: TypeYAML, Err: err}
		logger.Get().Error().Err(perr).Str("path", path).Msg("error decoding YAML")
		return nil, perr
	}
	return doc, nil
}

// newJSONParseError wraps a decoder error, translating the byte offset of
// syntax errors into a line and column.
func newJSONParseError(path string, data []byte, err error) *ParseError {
	perr := &ParseError{Path: path, Format: TypeJSON, Err: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		perr.Line, perr.Column = offsetToPosition(data, syntaxErr.Offset)
	}
	return perr
}

func offsetToPosition(data []byte, offset int64) (line, column int) {
	if offset < 1 || offset > int64(len(data)) {
		return 0, 0
	}
	line, column = 1, 1
	for _, b := range data[:offset-1] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
