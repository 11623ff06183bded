package widgets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
	docstest "github.com/go-drift/docskit/pkg/testing"
	"github.com/go-drift/docskit/pkg/widgets"
)

func TestAlert_Variants(t *testing.T) {
	tests := []struct {
		variant string
		class   string
		icon    string
	}{
		{"", "alert--info", "i"},
		{widgets.AlertWarning, "alert--warning", "!"},
		{widgets.AlertSuccess, "alert--success", "✓"},
		{widgets.AlertError, "alert--error", "✗"},
		{"custom", "alert--custom", "i"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			tester := docstest.NewWidgetTesterWithT(t)
			require.NoError(t, tester.PumpWidget(widgets.AlertOf(tt.variant, "Heads up", "Body text")))

			assert.True(t, tester.Find(docstest.ByClass(tt.class)).Exists())
			assert.Equal(t, tt.icon, tester.Find(docstest.ByClass("alert__icon")).Text())
			assert.Equal(t, "Heads up", tester.Find(docstest.ByClass("alert__title")).Text())
			assert.Equal(t, "Body text", tester.Find(docstest.ByClass("alert__body")).Text())
		})
	}
}

func TestCard_OptionalHeader(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.Card{Children: []core.Widget{markup.TextOf("content")}}))
	assert.False(t, tester.Find(docstest.ByClass("card__header")).Exists())
	assert.Equal(t, "content", tester.Find(docstest.ByClass("card__body")).Text())

	require.NoError(t, tester.PumpWidget(widgets.Card{Title: "Usage"}))
	assert.Equal(t, "Usage", tester.Find(docstest.ByClass("card__header")).Text())
}

func TestButton_Tap(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)

	taps := 0
	require.NoError(t, tester.PumpWidget(widgets.ButtonOf("Reset", func() { taps++ }).WithSize(widgets.ButtonSmall)))

	require.NoError(t, tester.Tap(docstest.ByTag("button")))
	assert.Equal(t, 1, taps)

	class, _ := tester.Find(docstest.ByTag("button")).Attr("class")
	assert.Equal(t, "btn btn--primary btn--small", class)
}

func TestButton_Disabled(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)

	taps := 0
	require.NoError(t, tester.PumpWidget(widgets.ButtonOf("Reset", func() { taps++ }).WithDisabled(true)))

	require.NoError(t, tester.Tap(docstest.ByTag("button")))
	assert.Zero(t, taps)
	_, disabled := tester.Find(docstest.ByTag("button")).Attr("disabled")
	assert.True(t, disabled)
}

func TestCodeBlock_Language(t *testing.T) {
	tests := []struct {
		className string
		want      string
	}{
		{"", "text"},
		{"language-go", "go"},
		{"language-jsx", "jsx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, widgets.CodeBlock{ClassName: tt.className}.Language())
	}
}

func TestCodeBlock_Plain(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.CodeBlock{ClassName: "language-go", Code: "x := 1 < 2"}))

	assert.Equal(t, "go", tester.Find(docstest.ByClass("code-block__language")).Text())
	assert.Equal(t, "x := 1 < 2", tester.Find(docstest.ByTag("code")).Text())
	assert.Contains(t, tester.HTML(), `<pre class="code-block__pre language-go">`)
	assert.Contains(t, tester.HTML(), "x := 1 &lt; 2")
}

func TestCodeBlock_Highlight(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.CodeBlock{
		ClassName: "language-go",
		Code:      "package main\n",
		Highlight: true,
	}))

	out := tester.HTML()
	assert.Contains(t, out, "<span class=")
	assert.Contains(t, tester.Find(docstest.ByTag("code")).Text(), "package")
}

func TestCodeBlock_UnknownLanguageStaysPlain(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.CodeBlock{
		ClassName: "language-no-such-language",
		Code:      "plain",
		Highlight: true,
	}))
	assert.Contains(t, tester.HTML(), "<code>plain</code>")
}

func TestHighlightCSS(t *testing.T) {
	css, err := widgets.HighlightCSS()
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(css))
}

func TestPropsTable(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.PropsTable{Props: []widgets.PropDef{
		{Name: "label", Type: "string", Description: "Heading text.", Required: true},
		{Name: "is12Hour", Type: "boolean", Default: "false"},
	}}))

	rows := tester.Find(docstest.ByTag("tr"))
	require.Equal(t, 3, rows.Count())

	cells := tester.Find(docstest.ByTag("td")).All()
	require.Len(t, cells, 10)
	text := func(i int) string {
		var sb strings.Builder
		for _, n := range core.Render(cells[i]) {
			sb.WriteString(docstest.NodeText(n))
		}
		return sb.String()
	}
	assert.Equal(t, "label", text(0))
	assert.Equal(t, "—", text(2))
	assert.Equal(t, "Yes", text(3))
	assert.Equal(t, "Heading text.", text(4))
	assert.Equal(t, "false", text(7))
	assert.Equal(t, "No", text(8))
}

func TestMarkdown_Sanitizes(t *testing.T) {
	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.Markdown{
		Source: "# Title\n\nSome *emphasis*.\n\n<script>alert(1)</script>\n",
	}))

	out := tester.HTML()
	assert.Contains(t, out, `<div class="markdown">`)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.NotContains(t, out, "<script>")
}

func TestRenderMarkdown_Table(t *testing.T) {
	out, err := widgets.RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

type exploding struct {
	core.StatelessBase
}

func (exploding) Build(core.BuildContext) core.Widget {
	panic("boom")
}

func TestErrorWidget_ReplacesFailedBuild(t *testing.T) {
	rec := &errors.Recorder{}
	t.Cleanup(rec.Install())
	widgets.InstallErrorWidget(true)
	t.Cleanup(func() { core.SetErrorWidgetBuilder(nil) })

	tester := docstest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(widgets.Card{Title: "Demo", Children: []core.Widget{exploding{}}}))

	assert.Equal(t, "Demo", tester.Find(docstest.ByClass("card__header")).Text())
	message := tester.Find(docstest.ByClass("build-error__message")).Text()
	assert.Contains(t, message, "boom")
	assert.Len(t, rec.BuildErrors(), 1)
}
