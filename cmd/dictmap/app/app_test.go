package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/pkg/errors"
)

const testdata = "../../../testdata/"

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	logger := zerolog.Nop()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", WithConfig(config), WithLogger(&logger))
	require.NoError(t, err)
	return app
}

func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_WithOptions(t *testing.T) {
	config := &Config{Format: "json"}
	app := newTestApp(t, config)

	assert.Same(t, config, app.Config())
	assert.Equal(t, "json", app.OutputFormat())
}

func TestApp_DictmapUsesConfig(t *testing.T) {
	app := newTestApp(t, &Config{
		UML:      testdata + "current/USDM_UML.xmi",
		Previous: testdata + "previous/USDM_UML.xmi",
	})

	dm, err := app.Dictmap()
	require.NoError(t, err)
	changes, err := dm.Diff(context.Background())
	require.NoError(t, err)
	assert.True(t, changes.HasChanges())
}

func TestApp_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	app := newTestApp(t, &Config{OutputFile: path})

	w, err := app.Output()
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	nested := filepath.Join(t.TempDir(), "reports", "out.txt")
	app = newTestApp(t, &Config{OutputFile: nested})
	w, err = app.Output()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.FileExists(t, nested)

	// a regular file cannot hold a directory
	app = newTestApp(t, &Config{OutputFile: filepath.Join(path, "nested")})
	_, err = app.Output()
	assert.Error(t, err)
}

func TestApp_Execute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.csv")
	app := newTestApp(t, &Config{LogOutput: "discard"})

	err := app.Execute(context.Background(), []string{
		"diff",
		"--previous", testdata + "previous/USDM_UML.xmi",
		"--uml", testdata + "current/USDM_UML.xmi",
		"--format", "csv",
		"--output-file", path,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Status,Class Name,Property Name,Data Type", lines[0])
	assert.Equal(t, "Class-Deleted,Retired,,", lines[1])
	assert.Equal(t, ",,code,String", lines[2])
}

func TestApp_ExecuteRejectsUnknownFormat(t *testing.T) {
	app := newTestApp(t, &Config{LogOutput: "discard"})

	err := app.Execute(context.Background(), []string{"version", "--format", "wide"})
	assert.Error(t, err)
}

func TestApp_ExecuteMissingConfigFile(t *testing.T) {
	app := newTestApp(t, &Config{LogOutput: "discard"})

	err := app.Execute(context.Background(), []string{"version", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	var configErr *errors.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestApp_VersionCommand(t *testing.T) {
	app := newTestApp(t, &Config{LogOutput: "discard"})
	root := app.createRootCommand()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version", "-v"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, buf.String(), "dictmap 1.0.0")
	assert.Contains(t, buf.String(), "commit:   abc123")
}
