package schema

import (
	"fmt"

	"github.com/confkit/schemacheck/pkg/document"
)

// Check validates the instance document at instancePath against the
// schema document at schemaPath.
//
// Returns nil if the instance conforms. A conformance failure is
// reported as ValidationErrors (matched by ErrValidationFailed); any
// other error means the check could not run: missing file, malformed
// JSON/YAML, or a schema that does not compile.
func Check(schemaPath, instancePath string) error {
	schemaDoc, err := document.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	v, err := Compile(schemaDoc, schemaPath)
	if err != nil {
		return err
	}

	instance, err := document.Load(instancePath)
	if err != nil {
		return fmt.Errorf("loading instance: %w", err)
	}

	return v.Validate(instance)
}
