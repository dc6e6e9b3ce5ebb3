// Package document loads JSON and YAML documents from disk into generic
// JSON values suitable for schema validation.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Loading errors
var (
	// ErrNotFound indicates the document file could not be located.
	ErrNotFound = errors.New("document not found")

	// ErrEmpty indicates the document file contained no content.
	ErrEmpty = errors.New("document is empty")
)

// Load reads and parses the document at the given file path.
//
// The file format is determined by extension: .yaml/.yml for YAML,
// everything else is parsed as JSON. JSON numbers are decoded without
// loss of precision, which is what the schema validator expects.
//
// Returns an error if:
//   - The file cannot be read (not found, permission denied, etc.)
//   - The file is empty
//   - The content is not syntactically valid JSON or YAML
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("permission denied reading document: %s", path)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data, path)
}

// LoadReader reads and parses a document from an io.Reader.
//
// The path parameter is used for format detection and error messages.
func LoadReader(r io.Reader, path string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data, path)
}

// Parse parses raw document bytes based on the path's extension.
func Parse(data []byte, path string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		return v, nil
	default:
		v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
		return v, nil
	}
}
