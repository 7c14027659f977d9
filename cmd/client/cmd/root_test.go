package cmd

import (
	"bytes"
	"context"
	"testing"

	"pocketapp/cmd/client/cmd/ui"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_ProfileSetAndShow(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("PICSUM_URL", "http://127.0.0.1:1")
	t.Cleanup(func() { ui.JSON = false })

	out, err := execute(t, "profile", "set", "--name", "Radha", "--github", "octocat", "--gender", "other")
	require.NoError(t, err)
	assert.Contains(t, out, "Профиль сохранен")

	out, err = execute(t, "--json", "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "viewing"`)
	assert.Contains(t, out, `"github": "octocat"`)
	assert.Contains(t, out, `"gender": "Other"`)

	out, err = execute(t, "--json", "profile", "open", "github", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "https://github.com/octocat")

	out, err = execute(t, "--json", "profile", "sign-out", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, `"has_profile": false`)
}

func TestRoot_FeedList(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("STORE_DRIVER", "memory")
	t.Cleanup(func() { ui.JSON = false })

	out, err := execute(t, "--json", "feed", "list")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "5"`)
}
