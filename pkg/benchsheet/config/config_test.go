package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet"
)

// chdir moves into a fresh directory so stray .env files are not picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdirTo(t, dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, benchsheet.DefaultOptions(), cfg.Options())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := chdir(t)

	path := filepath.Join(dir, "benchsheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: results/ws_output.json
output: reports/Load_Test.xlsx
sheet: WS_FILE
strict: true
`), 0644))

	t.Setenv("BENCHSHEET_SHEET", "WS_ENV")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "results/ws_output.json", cfg.Input)
	assert.Equal(t, "reports/Load_Test.xlsx", cfg.Output)
	assert.Equal(t, "WS_ENV", cfg.Sheet)
	assert.True(t, cfg.Strict)
}

func TestLoadEnvFile(t *testing.T) {
	dir := chdir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("BENCHSHEET_OUTPUT=from-dotenv.xlsx\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BENCHSHEET_OUTPUT") })

	n, err := LoadEnv(EnvFiles)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.xlsx", cfg.Output)
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t)

	_, err := Load("nope.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Sheet = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogLevel = "loud"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Sheet = "a-sheet-name-longer-than-thirty-one"
	require.Error(t, cfg.Validate())
}

// chdirTo changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdirTo(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: %v", err)
		}
	})
}
