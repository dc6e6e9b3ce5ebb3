package cmd

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serverSchema requires a string "name" property.
const serverSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"}
  }
}`

// chdirWithFixtures switches into a temp working directory containing
// the fixed schema/instance files. Empty content skips the file, to
// model the missing-file scenario.
func chdirWithFixtures(t *testing.T, schema, instance string) {
	t.Helper()
	dir := t.TempDir()
	// t.Chdir requires Go 1.24; emulate it for older toolchains.
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
	if schema != "" {
		require.NoError(t, os.WriteFile(SchemaPath, []byte(schema), 0o644))
	}
	if instance != "" {
		require.NoError(t, os.WriteFile(InstancePath, []byte(instance), 0o644))
	}
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name           string
		schema         string
		instance       string
		wantErr        bool
		wantValidation bool
		wantOutput     string
		outputContains []string
	}{
		{
			name:       "conforming instance",
			schema:     serverSchema,
			instance:   `{"name": "svc"}`,
			wantOutput: "✅ server.json is valid.\n",
		},
		{
			name:           "missing required property",
			schema:         serverSchema,
			instance:       `{"age": 5}`,
			wantErr:        true,
			wantValidation: true,
			outputContains: []string{"❌ Validation failed:", "name"},
		},
		{
			name:     "missing schema file",
			schema:   "",
			instance: `{"name": "svc"}`,
			wantErr:  true,
		},
		{
			name:     "instance with invalid JSON",
			schema:   serverSchema,
			instance: `{name: svc}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirWithFixtures(t, tt.schema, tt.instance)

			var out bytes.Buffer
			err := runCheck(&out)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutput, out.String())
				return
			}

			require.Error(t, err)
			if tt.wantValidation {
				assert.ErrorIs(t, err, errValidation)
				for _, want := range tt.outputContains {
					assert.Contains(t, out.String(), want)
				}
			} else {
				// Load and parse failures are not reported on stdout;
				// neither result line may appear.
				assert.NotErrorIs(t, err, errValidation)
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestRunCheck_idempotent(t *testing.T) {
	chdirWithFixtures(t, serverSchema, `{"name": "svc"}`)

	var first, second bytes.Buffer
	err1 := runCheck(&first)
	err2 := runCheck(&second)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first.String(), second.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, exitCode(nil))
	assert.Equal(t, ExitValidationFailed, exitCode(errValidation))
	assert.Equal(t, ExitRuntimeError, exitCode(errors.New("boom")))
}

func TestRootCommand(t *testing.T) {
	chdirWithFixtures(t, serverSchema, `{"name": "svc"}`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "✅ server.json is valid.\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-08-31")
	t.Cleanup(func() { SetVersionInfo("dev", "HEAD", "unknown") })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "schemacheck 1.2.3 (commit abc123, built 2026-08-31)\n", out.String())
}

func TestSetVersionInfo(t *testing.T) {
	t.Cleanup(func() { SetVersionInfo("dev", "HEAD", "unknown") })

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
	}{
		{name: "release values", version: "1.0.0", commit: "abc123", buildDate: "2026-01-15"},
		{name: "dev values", version: "dev", commit: "HEAD", buildDate: "unknown"},
		{name: "empty values", version: "", commit: "", buildDate: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo(tt.version, tt.commit, tt.buildDate)

			assert.Equal(t, tt.version, versionInfo.Version)
			assert.Equal(t, tt.commit, versionInfo.Commit)
			assert.Equal(t, tt.buildDate, versionInfo.BuildDate)
		})
	}
}
