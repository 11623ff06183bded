package widgets

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
)

var (
	markdownOnce     sync.Once
	markdownRenderer goldmark.Markdown
	markdownPolicy   *bluemonday.Policy
)

func markdownEngine() (goldmark.Markdown, *bluemonday.Policy) {
	markdownOnce.Do(func() {
		markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))
		markdownPolicy = bluemonday.UGCPolicy()
	})
	return markdownRenderer, markdownPolicy
}

// RenderMarkdown converts GitHub-flavored Markdown to sanitized HTML.
func RenderMarkdown(source string) (string, error) {
	md, policy := markdownEngine()
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return string(policy.SanitizeBytes(buf.Bytes())), nil
}

// Markdown renders prose written in Markdown. Raw HTML in the source is
// sanitized; scripts and event handlers never reach the page.
type Markdown struct {
	core.StatelessBase
	Source string
}

func (m Markdown) Build(ctx core.BuildContext) core.Widget {
	rendered, err := RenderMarkdown(m.Source)
	if err != nil {
		errors.Report(&errors.DocsError{Op: "widgets.Markdown", Kind: errors.KindParse, Err: err})
		rendered = ""
	}
	return markup.Element{
		Tag:      "div",
		Class:    "markdown",
		Children: []core.Widget{markup.Raw{HTML: rendered}},
	}
}
