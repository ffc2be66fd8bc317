package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	for _, name := range []string{"serve", "export", "render", "version"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, cmd)
			assert.Equal(t, name, cmd.Name())
			assert.NotEmpty(t, cmd.Short)
		})
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	out := execute(t, "render")

	assert.Contains(t, out, "<h1>Hello, Next.js!</h1>")
	assert.Contains(t, out, `alt="NextJS Logo"`)
}

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	out := execute(t, "export", "--out", dir)

	assert.Contains(t, out, dir)
	_, err := os.Stat(filepath.Join(dir, "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "next.svg"))
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")

	assert.Contains(t, out, "hellopage dev")
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("GOPORT", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("RATE_BURST", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg := config()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, float64(10), cfg.RateLimit)
	assert.Equal(t, 20, cfg.RateBurst)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GOPORT", "9090")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_BURST", "4")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := config()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 4, cfg.RateBurst)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestConfigInvalidFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "fast")
	t.Setenv("RATE_BURST", "0")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := config()

	assert.Equal(t, float64(10), cfg.RateLimit)
	assert.Equal(t, 20, cfg.RateBurst)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestServeConfigPortOverride(t *testing.T) {
	t.Setenv("GOPORT", "9090")

	assert.Equal(t, "9090", serveConfig("").Port)
	assert.Equal(t, "7070", serveConfig("7070").Port)
}

func TestServePortFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestRootPrintsHelp(t *testing.T) {
	out := execute(t)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
	for _, name := range []string{"serve", "export", "render", "version"} {
		assert.Contains(t, out, name)
	}
}
