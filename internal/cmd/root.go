// Package cmd implements the schemacheck command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/confkit/schemacheck/internal/observability"
	"github.com/confkit/schemacheck/pkg/schema"
)

// Fixed input paths, resolved against the working directory.
const (
	SchemaPath   = "server.schema.json"
	InstancePath = "server.json"
)

// Process exit codes.
const (
	ExitOK               = 0
	ExitValidationFailed = 1
	ExitRuntimeError     = 2
)

// errValidation marks a validation failure that has already been
// reported on stdout.
var errValidation = errors.New("validation failed")

var rootCmd = &cobra.Command{
	Use:   "schemacheck",
	Short: "Validate server.json against server.schema.json",
	Long: `Validate server.json against server.schema.json in the current directory.

Prints a single result line and exits 0 when the document conforms,
1 when it fails validation, and 2 when the check could not run
(missing file, malformed JSON, schema that does not compile).

Intended as a CI/build-time gate:
  schemacheck`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout())
	},
}

// runCheck runs the load, load, validate pipeline and writes the
// result line to out.
func runCheck(out io.Writer) error {
	runID := uuid.New().String()
	start := time.Now()
	observability.CLILogger.Debug("Starting validation",
		zap.String("run_id", runID),
		zap.String("schema", SchemaPath),
		zap.String("instance", InstancePath))

	err := schema.Check(SchemaPath, InstancePath)
	switch {
	case err == nil:
		fmt.Fprintf(out, "✅ %s is valid.\n", InstancePath)
		observability.CLILogger.Debug("Validation succeeded",
			zap.String("run_id", runID),
			zap.Duration("elapsed", time.Since(start)))
		return nil

	case errors.Is(err, schema.ErrValidationFailed):
		fmt.Fprintf(out, "❌ Validation failed: %s\n", err.Error())
		observability.CLILogger.Debug("Validation failed",
			zap.String("run_id", runID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return errValidation

	default:
		observability.CLILogger.Error("Check could not run",
			zap.String("run_id", runID),
			zap.String("schema", SchemaPath),
			zap.String("instance", InstancePath),
			zap.Error(err))
		return err
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	defer observability.Sync()

	err := rootCmd.Execute()
	return exitCode(err)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errValidation):
		// Already reported on stdout.
		return ExitValidationFailed
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitRuntimeError
	}
}
