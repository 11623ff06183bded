package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/docskit/pkg/errors"
)

const pageYAML = `title: Picker
blocks:
  - type: datetime
    id: publish
    label: Publish
    value: "2024-03-05T14:30:00"
`

// execute runs the CLI with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	projectDir, verbose = "", false
	renderOut, renderSets = "", nil
	buildOut, buildJobs = "public", 2
	dtValue, dtDate, dtTime, dtLocation = "", "", "", "Local"
	t.Cleanup(func() { errors.SetHandler(nil) })

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func newProject(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/widgets\n\ngo 1.24\n"), 0o644))
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "docskit.yaml"), []byte(config), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "picker.yaml"), []byte(pageYAML), 0o644))
	return dir
}

func TestDatetimeCommands(t *testing.T) {
	out, err := execute(t, "datetime", "edit-date", "--tz", "UTC", "--value", "2024-03-05T14:30:00", "--date", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T14:30:00\n", out)

	out, err = execute(t, "datetime", "edit-time", "--tz", "UTC", "--value", "2024-03-05T14:30:00", "--time", "09:15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T09:15:00\n", out)

	out, err = execute(t, "datetime", "edit-date", "--value", "2024-03-05T14:30:00", "--date", "")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	out, err = execute(t, "datetime", "split", "--tz", "UTC", "--value", "2024-03-05T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "date=2024-03-05\ntime=14:30\n", out)

	_, err = execute(t, "datetime", "split", "--tz", "Nowhere/Special")
	assert.Error(t, err)
}

func TestRenderWithEditsPersists(t *testing.T) {
	dir := newProject(t, "site:\n  title: Widgets\nstorage:\n  backend: file\n")
	page := filepath.Join(dir, "pages", "picker.yaml")

	out, err := execute(t, "-C", dir, "render", page, "--set", "datetime-publish=2024-03-10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Picker · Widgets</title>")
	assert.Contains(t, out, `value="2024-03-10"`)

	out, err = execute(t, "-C", dir, "store", "get", "picker/publish")
	require.NoError(t, err)
	assert.Equal(t, "\"2024-03-10T14:30:00\"\n", out)

	out, err = execute(t, "-C", dir, "store", "list")
	require.NoError(t, err)
	assert.Equal(t, "picker/publish\n", out)

	target := filepath.Join(dir, "out", "picker.html")
	_, err = execute(t, "-C", dir, "render", page, "--out", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `value="2024-03-10"`)
}

func TestRenderErrors(t *testing.T) {
	dir := newProject(t, "")
	page := filepath.Join(dir, "pages", "picker.yaml")

	_, err := execute(t, "-C", dir, "render", page, "--set", "no-equals")
	assert.ErrorContains(t, err, "invalid --set")

	_, err = execute(t, "-C", dir, "render", page, "--set", "missing=1")
	assert.Error(t, err)

	_, err = execute(t, "-C", dir, "render", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	dir := newProject(t, "")
	out := filepath.Join(dir, "public")

	stdout, err := execute(t, "-C", dir, "build", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Built 1 page(s)")

	data, err := os.ReadFile(filepath.Join(out, "picker.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Picker · widgets</title>")
}

func TestStoreCommands(t *testing.T) {
	dir := newProject(t, "storage:\n  backend: sqlite\n")

	_, err := execute(t, "-C", dir, "store", "set", "demo/count", `{"count": 3}`)
	require.NoError(t, err)

	out, err := execute(t, "-C", dir, "store", "get", "demo/count")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":3}`, strings.TrimSpace(out))

	_, err = execute(t, "-C", dir, "store", "get", "demo/missing")
	assert.ErrorContains(t, err, "not found")

	_, err = execute(t, "-C", dir, "store", "set", "demo/bad", `{"count":`)
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestStoreSetWithStorageDisabled(t *testing.T) {
	dir := newProject(t, "storage:\n  backend: none\n")

	_, err := execute(t, "-C", dir, "store", "set", "k", `1`)
	assert.ErrorContains(t, err, "memory only")

	_, err = execute(t, "-C", dir, "store", "list")
	assert.ErrorContains(t, err, "cannot list")
}

func TestPropsCommand(t *testing.T) {
	out, err := execute(t, "props", "../../../pkg/widgets", "TextControl")
	require.NoError(t, err)
	assert.Contains(t, out, "type: props")
	assert.Contains(t, out, "name: Placeholder")
	assert.Contains(t, out, "default: text")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docskit version "+Version+" (built "+BuildTime+")\n", out)
}
