package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	// Arrange - Clear all environment variables
	clearEnvVars(t)

	// Act
	cfg, err := Load("")

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.ArrayCapacity != DefaultArrayCapacity {
		t.Errorf("ArrayCapacity = %d, want %d", cfg.ArrayCapacity, DefaultArrayCapacity)
	}
	if cfg.LinkedNodeLimit != DefaultLinkedNodeLimit {
		t.Errorf("LinkedNodeLimit = %d, want %d", cfg.LinkedNodeLimit, DefaultLinkedNodeLimit)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogOutput != DefaultLogOutput {
		t.Errorf("LogOutput = %s, want %s", cfg.LogOutput, DefaultLogOutput)
	}
	if cfg.MetricsEnabled != DefaultMetricsEnabled {
		t.Errorf("MetricsEnabled = %v, want %v", cfg.MetricsEnabled, DefaultMetricsEnabled)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*testing.T, *Config)
	}{
		{
			name:    "large backpack",
			envVars: map[string]string{EnvArrayCapacity: "50"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.ArrayCapacity != 50 {
					t.Errorf("ArrayCapacity = %d, want 50", cfg.ArrayCapacity)
				}
			},
		},
		{
			name:    "node limit",
			envVars: map[string]string{EnvLinkedNodeLimit: "5"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LinkedNodeLimit != 5 {
					t.Errorf("LinkedNodeLimit = %d, want 5", cfg.LinkedNodeLimit)
				}
			},
		},
		{
			name:    "custom log level",
			envVars: map[string]string{EnvLogLevel: "debug"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
				}
			},
		},
		{
			name:    "log to file",
			envVars: map[string]string{EnvLogOutput: "/tmp/backpack.log"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LogOutput != "/tmp/backpack.log" {
					t.Errorf("LogOutput = %s, want /tmp/backpack.log", cfg.LogOutput)
				}
			},
		},
		{
			name:    "metrics disabled",
			envVars: map[string]string{EnvMetricsEnabled: "false"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.MetricsEnabled {
					t.Error("MetricsEnabled = true, want false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			// Act
			cfg, err := Load("")

			// Assert
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_File(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := writeConfigFile(t, "array_capacity: 50\nlog_level: info\nmetrics_enabled: false\n")

	// Act
	cfg, err := Load(path)

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.ArrayCapacity != 50 {
		t.Errorf("ArrayCapacity = %d, want 50", cfg.ArrayCapacity)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
	if cfg.LogOutput != DefaultLogOutput {
		t.Errorf("LogOutput = %s, want default %s", cfg.LogOutput, DefaultLogOutput)
	}
}

func TestLoad_FileFromEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := writeConfigFile(t, "linked_node_limit: 3\n")
	t.Setenv(EnvConfigFile, path)

	// Act
	cfg, err := Load("")

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.LinkedNodeLimit != 3 {
		t.Errorf("LinkedNodeLimit = %d, want 3", cfg.LinkedNodeLimit)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := writeConfigFile(t, "array_capacity: 20\n")
	t.Setenv(EnvArrayCapacity, "30")

	// Act
	cfg, err := Load(path)

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.ArrayCapacity != 30 {
		t.Errorf("ArrayCapacity = %d, want 30", cfg.ArrayCapacity)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := writeConfigFile(t, "")

	// Act
	cfg, err := Load(path)

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.ArrayCapacity != DefaultArrayCapacity {
		t.Errorf("ArrayCapacity = %d, want %d", cfg.ArrayCapacity, DefaultArrayCapacity)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "capacity: 10\n"},
		{"wrong type", "array_capacity: lots\n"},
		{"malformed yaml", "array_capacity: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			path := writeConfigFile(t, tt.content)

			// Act
			cfg, err := Load(path)

			// Assert
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if cfg != nil {
				t.Errorf("Load() expected nil config on error, got %+v", cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// Assert
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr error
	}{
		{
			name:    "capacity zero",
			envVars: map[string]string{EnvArrayCapacity: "0"},
			wantErr: ErrInvalidArrayCapacity,
		},
		{
			name:    "capacity too high",
			envVars: map[string]string{EnvArrayCapacity: "51"},
			wantErr: ErrInvalidArrayCapacity,
		},
		{
			name:    "negative node limit",
			envVars: map[string]string{EnvLinkedNodeLimit: "-1"},
			wantErr: ErrInvalidNodeLimit,
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{EnvLogLevel: "verbose"},
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			// Act
			cfg, err := Load("")

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if cfg != nil {
				t.Errorf("Load() expected nil config on error, got %+v", cfg)
			}
		})
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{"capacity not a number", map[string]string{EnvArrayCapacity: "ten"}},
		{"node limit not a number", map[string]string{EnvLinkedNodeLimit: "x"}},
		{"metrics enabled not a bool", map[string]string{EnvMetricsEnabled: "notabool"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			// Act
			cfg, err := Load("")

			// Assert
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if cfg != nil {
				t.Errorf("Load() expected nil config on error, got %+v", cfg)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"minimum capacity", func(c *Config) { c.ArrayCapacity = 1 }, nil},
		{"maximum capacity", func(c *Config) { c.ArrayCapacity = MaxArrayCapacity }, nil},
		{"empty log output", func(c *Config) { c.LogOutput = "" }, ErrEmptyLogOutput},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := Default()
			tt.mutate(cfg)

			// Act
			err := cfg.Validate()

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backpack.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		EnvConfigFile,
		EnvArrayCapacity,
		EnvLinkedNodeLimit,
		EnvLogLevel,
		EnvLogOutput,
		EnvMetricsEnabled,
	}
	for _, env := range envVars {
		t.Setenv(env, "")
	}
}
