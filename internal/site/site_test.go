package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/datetime"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
	"github.com/go-drift/docskit/pkg/storage"
)

func TestMain(m *testing.M) {
	// chroma compiles regexp2 patterns, which start a shared timeout clock.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/dlclark/regexp2.runClock"))
}

func testSite(backend storage.Backend) *Site {
	return &Site{
		Name:    "kit",
		Title:   "Kit",
		Backend: backend,
		Editor: datetime.Editor{
			Location: time.UTC,
			Now:      func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) },
		},
	}
}

func TestLoadPage(t *testing.T) {
	page, err := LoadPage("testdata/datetime-picker.yaml")
	require.NoError(t, err)

	assert.Equal(t, "datetime-picker", page.Slug)
	assert.Equal(t, "DateTimePicker", page.Title)
	require.Len(t, page.Blocks, 7)

	var ids []string
	var walk func([]Block)
	walk = func(blocks []Block) {
		for _, b := range blocks {
			if b.Interactive() {
				ids = append(ids, b.ID)
			}
			walk(b.Blocks)
		}
	}
	walk(page.Blocks)
	if diff := cmp.Diff([]string{"publish", "columns", "text-3"}, ids); diff != "" {
		t.Errorf("interactive ids mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePageErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown type", "blocks:\n  - type: carousel\n", "unknown type"},
		{"missing type", "blocks:\n  - body: x\n", "missing type"},
		{"unknown field", "title: x\ncolour: red\n", "colour"},
		{"duplicate id", "blocks:\n  - type: text\n    id: a\n  - type: range\n    id: a\n", "duplicate id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePage(strings.NewReader(tt.yaml), "p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	page, err := ParsePage(strings.NewReader(""), "empty")
	require.NoError(t, err)
	assert.Equal(t, "empty", page.Title)
}

func TestLoadPageMissingFile(t *testing.T) {
	_, err := LoadPage("testdata/nope.yaml")
	var docsErr *errors.DocsError
	require.ErrorAs(t, err, &docsErr)
	assert.Equal(t, errors.KindParse, docsErr.Kind)
}

func TestRenderPage(t *testing.T) {
	page, err := LoadPage("testdata/datetime-picker.yaml")
	require.NoError(t, err)

	doc, err := testSite(storage.NewMemory()).RenderPage(page)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>\n<html lang=\"en\">"))
	for _, want := range []string{
		"<title>DateTimePicker · Kit</title>",
		`<main class="page" data-page="datetime-picker">`,
		`<div class="playground" data-key="datetime-picker/publish">`,
		`id="datetime-publish" class="date-time-picker__date" type="date" value="2024-03-05"`,
		`value="14:30"`,
		`<output class="playground__value">2024-03-05T14:30:00</output>`,
		`<div class="alert alert--warning" role="alert">`,
		`<div class="card__header">Options</div>`,
		`id="range-columns"`,
		`placeholder="Say something"`,
		`<span class="code-block__language">go</span>`,
		`<strong>never</strong>`,
		`<table class="props-table">`,
		`<button class="btn btn--outline btn--medium" type="button">Save</button>`,
		".date-time-picker__fields",
	} {
		assert.Contains(t, doc, want)
	}
}

func TestSessionPersistsEdits(t *testing.T) {
	backend := storage.NewMemory()
	site := testSite(backend)
	page, err := LoadPage("testdata/datetime-picker.yaml")
	require.NoError(t, err)

	session := site.Open(page)
	require.NoError(t, session.Change("datetime-publish", "2024-03-10"))
	require.NoError(t, session.Change("datetime-publish-time", "09:15"))
	require.NoError(t, session.Change("range-columns", "5"))
	doc, err := session.Document()
	require.NoError(t, err)
	session.Close()
	assert.Contains(t, doc, `<output class="playground__value">2024-03-10T09:15:00</output>`)

	raw, ok, err := backend.Get("datetime-picker/publish")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"2024-03-10T09:15:00"`, raw)

	doc, err = site.RenderPage(page)
	require.NoError(t, err)
	assert.Contains(t, doc, `value="2024-03-10"`)
	assert.Contains(t, doc, `<output class="playground__value">5</output>`)

	err = site.Open(page).Change("missing", "x")
	assert.ErrorIs(t, err, ErrNoControl)
}

func TestSessionWithUnavailableStorage(t *testing.T) {
	rec := &errors.Recorder{}
	t.Cleanup(rec.Install())

	page, err := LoadPage("testdata/datetime-picker.yaml")
	require.NoError(t, err)

	session := testSite(storage.Disabled{}).Open(page)
	defer session.Close()
	require.NoError(t, session.Change("datetime-publish", "2024-03-10"))
	doc, err := session.Document()
	require.NoError(t, err)

	assert.Contains(t, doc, `<output class="playground__value">2024-03-10T14:30:00</output>`)
	assert.Contains(t, rec.Kinds(), errors.KindStorage)
}

func TestBuild(t *testing.T) {
	src := t.TempDir()
	for _, name := range []string{"datetime-picker.yaml", "button.yaml"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(src, name), data, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(src, "docskit.yaml"), []byte("site:\n  name: kit\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("ignored"), 0o644))

	out := filepath.Join(t.TempDir(), "public")
	results, err := testSite(storage.NewMemory()).Build(context.Background(), src, out, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "button", results[0].Slug)
	assert.Equal(t, "datetime-picker", results[1].Slug)

	for _, r := range results {
		data, err := os.ReadFile(r.Output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
	}
}

func TestBuildFailsOnBadPage(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.yaml"), []byte("blocks:\n  - type: nope\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "good.yaml"), []byte("title: Good\n"), 0o644))

	_, err := testSite(nil).Build(context.Background(), src, t.TempDir(), 0)
	assert.Error(t, err)
}

func TestBuildCancelled(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.yaml"), []byte("title: A\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testSite(nil).Build(ctx, src, t.TempDir(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildShowcase(t *testing.T) {
	rec := &errors.Recorder{}
	t.Cleanup(rec.Install())

	out := t.TempDir()
	results, err := testSite(storage.NewMemory()).Build(context.Background(), "../../showcase/pages", out, 2)
	require.NoError(t, err)
	require.Len(t, results, 5)
	assert.Zero(t, rec.Len())

	doc, err := os.ReadFile(filepath.Join(out, "datetime-picker.html"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), `id="datetime-publish"`)
	assert.Contains(t, string(doc), `date-time-picker__time--12h`)
}

var _ core.Widget = Playground[string]{}

func TestPlaygroundKeepsValueUnderStorageKey(t *testing.T) {
	backend := storage.NewMemory()
	owner := core.NewBuildOwner()

	var setValue func(string)
	root := core.Mount(Playground[string]{
		Backend:    backend,
		StorageKey: "guide/title",
		Initial:    "draft",
		Control: func(v string, set func(string)) core.Widget {
			setValue = set
			return markup.TextOf(v)
		},
	}, owner)

	out, err := core.RenderString(root)
	require.NoError(t, err)
	assert.Contains(t, out, `data-key="guide/title"`)
	assert.Contains(t, out, `<output class="playground__value">draft</output>`)

	setValue("final")
	owner.FlushBuild()

	raw, ok, err := backend.Get("guide/title")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"final"`, raw)

	out, err = core.RenderString(root)
	require.NoError(t, err)
	assert.Contains(t, out, `<output class="playground__value">final</output>`)
}
