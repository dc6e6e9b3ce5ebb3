// Package schema validates JSON documents against JSON Schema
// definitions.
//
// Validation is delegated to github.com/santhosh-tekuri/jsonschema/v6.
// The draft in effect is chosen by the schema's own $schema keyword,
// defaulting to draft 2020-12 when absent.
package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Validation errors
var (
	// ErrSchemaInvalid indicates the schema document could not be compiled.
	ErrSchemaInvalid = errors.New("schema compilation failed")

	// ErrValidationFailed indicates the instance failed schema validation.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a single validation issue.
type ValidationError struct {
	// Path is the JSON pointer to the problematic value (e.g., "/name").
	// Empty for issues reported at the document root.
	Path string

	// Message describes the validation failure.
	Message string
}

// Error implements error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:", len(e))
	for _, err := range e {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error type.
func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// Validator checks instance documents against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// messages renders validator error kinds as plain English text.
var messages = message.NewPrinter(language.English)

// Compile compiles a schema document into a Validator.
//
// The url names the schema resource in compilation errors; pass the
// file path the document was loaded from.
func Compile(doc any, url string) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)

	url = filepath.ToSlash(url)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Validator{schema: sch}, nil
}

// Validate checks the instance document against the schema.
//
// Returns nil if the instance conforms, or a ValidationErrors listing
// every leaf cause reported by the validation library.
func (v *Validator) Validate(instance any) error {
	err := v.schema.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		// Not a conformance failure; the instance could not be checked.
		return fmt.Errorf("schema validation error: %w", err)
	}

	var errs ValidationErrors
	for _, cause := range leafCauses(ve) {
		errs = append(errs, ValidationError{
			Path:    pointer(cause.InstanceLocation),
			Message: cause.ErrorKind.LocalizedString(messages),
		})
	}
	return errs
}

// leafCauses flattens the validator's cause tree into the individual
// failures, dropping intermediate schema-composition nodes.
func leafCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		leaves = append(leaves, leafCauses(cause)...)
	}
	return leaves
}

// pointer renders instance location tokens as a JSON pointer (RFC 6901).
func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range tokens {
		tok = strings.ReplaceAll(tok, "~", "~0")
		tok = strings.ReplaceAll(tok, "/", "~1")
		b.WriteString("/")
		b.WriteString(tok)
	}
	return b.String()
}
