package config

import (
	"path/filepath"
	"testing"

	"github.com/sandevgo/roster/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".roster"), c.GetRuntimePath())
	assert.Equal(t, filepath.Join(home, ".roster", "input_history"), c.GetHistoryPath())
	assert.Equal(t, core.StorageMemory, c.GetStorage())
	assert.Equal(t, "roster> ", c.GetPrompt())
	assert.Equal(t, 5, c.GetMaxReadFailures())
	assert.True(t, c.IsCLISelected())
	assert.False(t, c.IsTelegramSelected())
}

func TestParseAppConfig_Overrides(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("ROSTER_RUNTIME_PATH", runtime)
	t.Setenv("ROSTER_STORAGE", "sqlite")
	t.Setenv("ROSTER_MAX_READ_FAILURES", "2")
	t.Setenv("ROSTER_ENABLE_TELEGRAM", "true")

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, runtime, c.GetRuntimePath())
	assert.Equal(t, core.StorageSQLite, c.GetStorage())
	assert.Equal(t, 2, c.GetMaxReadFailures())
	assert.True(t, c.IsTelegramSelected())
}

func TestParseAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown_storage",
			env:     map[string]string{"ROSTER_STORAGE": "postgres"},
			wantErr: "unknown storage",
		},
		{
			name:    "zero_read_failures",
			env:     map[string]string{"ROSTER_MAX_READ_FAILURES": "0"},
			wantErr: "at least 1",
		},
		{
			name:    "no_transport",
			env:     map[string]string{"ROSTER_ENABLE_CLI": "false"},
			wantErr: "no transport enabled",
		},
		{
			name:    "not_a_number",
			env:     map[string]string{"ROSTER_MAX_READ_FAILURES": "many"},
			wantErr: "ROSTER_MAX_READ_FAILURES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseAppConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveRuntimePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "/var/lib/roster", resolveRuntimePath("/var/lib/roster"))
	assert.Equal(t, filepath.Join(home, "custom"), resolveRuntimePath("custom"))
	assert.Equal(t, filepath.Join(home, ".roster"), resolveRuntimePath(""))
}

func TestIsDebug(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: false},
		{value: "1", want: true},
		{value: "true", want: true},
		{value: "0", want: false},
		{value: "verbose", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("ROSTER_DEBUG", tt.value)
			assert.Equal(t, tt.want, IsDebug())
		})
	}
}
