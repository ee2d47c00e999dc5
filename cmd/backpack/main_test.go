package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/backpack/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		output  string
		wantErr bool
	}{
		{"debug level", "debug", "stderr", false},
		{"info level", "info", "stdout", false},
		{"warn level", "warn", "stderr", false},
		{"error level", "error", "stderr", false},
		{"invalid level defaults to warn", "invalid", "stderr", false},
		{"empty output defaults to stderr", "info", "", false},
		{"file output", "info", filepath.Join(t.TempDir(), "backpack.log"), false},
		{"unwritable output", "info", filepath.Join(t.TempDir(), "missing", "dir", "backpack.log"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			logger, err := initLogger(tt.level, tt.output)

			// Assert
			if tt.wantErr {
				if err == nil {
					t.Error("initLogger() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("initLogger() error = %v", err)
			}
			if logger == nil {
				t.Error("initLogger() returned nil logger")
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand(strings.NewReader(""), &bytes.Buffer{})

	require.NotNil(t, cmd)
	assert.Equal(t, "backpack", cmd.Use)

	for _, name := range []string{"config", "capacity", "node-limit", "log-level", "log-output", "no-metrics"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func TestRootCommand_RunsSession(t *testing.T) {
	clearEnv(t)
	logPath := filepath.Join(t.TempDir(), "backpack.log")
	var out bytes.Buffer
	input := "1\n1\nBandage\nheal\n3\n0\n0\n"

	cmd := newRootCommand(strings.NewReader(input), &out)
	cmd.SetArgs([]string{"--capacity", "20", "--log-level", "info", "--log-output", logPath})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "==== Array backpack (1/20) ====")
	assert.Contains(t, out.String(), "Good looting and good luck!")

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "session started")
	assert.Contains(t, string(logs), `"array_capacity":20`)
}

func TestRootCommand_ConfigFileAndNoMetrics(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "backpack.yaml")
	content := "array_capacity: 50\nlog_output: " + filepath.Join(dir, "backpack.log") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))
	var out bytes.Buffer

	cmd := newRootCommand(strings.NewReader("0\n"), &out)
	cmd.SetArgs([]string{"--config", cfgPath, "--no-metrics"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "(0/50)")
	assert.NotContains(t, out.String(), "Statistics")
}

func TestRootCommand_InvalidCapacity(t *testing.T) {
	clearEnv(t)
	cmd := newRootCommand(strings.NewReader("0\n"), &bytes.Buffer{})
	cmd.SetArgs([]string{"--capacity", "51"})

	err := cmd.Execute()

	assert.True(t, errors.Is(err, config.ErrInvalidArrayCapacity), "error = %v", err)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	clearEnv(t)
	cmd := newRootCommand(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		config.EnvConfigFile,
		config.EnvArrayCapacity,
		config.EnvLinkedNodeLimit,
		config.EnvLogLevel,
		config.EnvLogOutput,
		config.EnvMetricsEnabled,
	} {
		t.Setenv(env, "")
	}
}
