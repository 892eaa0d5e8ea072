package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_TableOutput(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Output: "table"},
			"remote":  {Host: "http://localhost:8080", Output: "json"},
		},
	}))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"config", "show", "--output", "table"})
	old := captureStdout(t)

	require.NoError(t, rootCmd.Execute())
	output := old()

	assert.Contains(t, output, "PROFILE")
	assert.Contains(t, output, "ACTIVE")
	assert.Contains(t, output, "HOST")
	assert.Contains(t, output, "default")
	assert.Contains(t, output, "(local)")
	assert.Contains(t, output, "http://localhost:8080")
	assert.Contains(t, output, "*")
	assert.NotContains(t, output, "current-profile:")
}

func TestConfigShow_JSONOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles:       map[string]Profile{"default": {Output: "table"}},
	}))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"config", "show", "-o", "json"})
	old := captureStdout(t)

	require.NoError(t, rootCmd.Execute())
	var got UserConfig
	require.NoError(t, json.Unmarshal([]byte(old()), &got))
	assert.Equal(t, "default", got.CurrentProfile)
	assert.Equal(t, "table", got.Profiles["default"].Output)
}

func TestConfigShow_NoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"config", "show"})
	require.Error(t, rootCmd.Execute())
}

func TestConfigSetProfileAndUse(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	set := newRootCmd()
	set.SetArgs([]string{"config", "set-profile", "--name", "staging", "--host", "https://insertkit.example.com", "--output", "json"})
	old := captureStdout(t)
	require.NoError(t, set.Execute())
	assert.Contains(t, old(), `Profile "staging" saved`)

	use := newRootCmd()
	use.SetArgs([]string{"config", "use-profile", "staging"})
	old = captureStdout(t)
	require.NoError(t, use.Execute())
	assert.Contains(t, old(), `Active profile set to "staging"`)

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.CurrentProfile)
	assert.Equal(t, Profile{Host: "https://insertkit.example.com", Output: "json"}, cfg.Profiles["staging"])
}

func TestConfigSetProfile_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad output", args: []string{"--name", "p", "--output", "yaml"}, want: "unsupported output format"},
		{name: "bad host", args: []string{"--name", "p", "--host", "localhost:8080"}, want: "invalid host"},
		{name: "missing name", args: []string{"--output", "json"}, want: "name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			cmd := newRootCmd()
			cmd.SetArgs(append([]string{"config", "set-profile"}, tc.args...))
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestConfigUseProfile_Unknown(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, SaveUserConfig(&UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{"default": {}}}))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "use-profile", "nope"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `profile "nope" not found`)
}
