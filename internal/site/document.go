package site

import (
	_ "embed"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
	"github.com/go-drift/docskit/pkg/widgets"
)

//go:embed assets/docskit.css
var baseCSS string

var (
	stylesheetOnce sync.Once
	stylesheet     string
)

// Stylesheet returns the CSS inlined into every page: the component styles
// followed by the code highlighting theme.
func Stylesheet() string {
	stylesheetOnce.Do(func() {
		css, err := widgets.HighlightCSS()
		if err != nil {
			errors.Report(&errors.DocsError{Op: "site.Stylesheet", Kind: errors.KindBuild, Err: err})
		}
		stylesheet = baseCSS + css
	})
	return stylesheet
}

// PageWidget returns the widget tree of a complete HTML document for page.
func (s *Site) PageWidget(page *Page) core.Widget {
	title := page.Title
	if s.Title != "" && s.Title != page.Title {
		title = page.Title + " · " + s.Title
	}

	header := []core.Widget{
		markup.Element{Tag: "h1", Children: []core.Widget{markup.TextOf(page.Title)}},
	}
	if s.Title != "" {
		header = append([]core.Widget{markup.Element{
			Tag:      "span",
			Class:    "page__site",
			Children: []core.Widget{markup.TextOf(s.Title)},
		}}, header...)
	}
	if page.Description != "" {
		header = append(header, markup.Element{
			Tag:      "p",
			Class:    "page__description",
			Children: []core.Widget{markup.TextOf(page.Description)},
		})
	}

	return markup.Element{
		Tag:   "html",
		Attrs: []html.Attribute{markup.Attr("lang", "en")},
		Children: []core.Widget{
			markup.Element{Tag: "head", Children: []core.Widget{
				markup.Element{Tag: "meta", Attrs: []html.Attribute{markup.Attr("charset", "utf-8")}},
				markup.Element{Tag: "meta", Attrs: []html.Attribute{
					markup.Attr("name", "viewport"),
					markup.Attr("content", "width=device-width, initial-scale=1"),
				}},
				markup.Element{Tag: "title", Children: []core.Widget{markup.TextOf(title)}},
				markup.Element{Tag: "style", Children: []core.Widget{markup.TextOf(Stylesheet())}},
			}},
			markup.Element{Tag: "body", Children: []core.Widget{
				markup.Element{
					Tag:   "main",
					Class: "page",
					Attrs: []html.Attribute{markup.Attr("data-page", page.Slug)},
					Children: []core.Widget{
						markup.Element{Tag: "header", Class: "page__header", Children: header},
						markup.Element{Tag: "article", Class: "page__content", Children: s.blocks(page, page.Blocks)},
					},
				},
			}},
		},
	}
}

// RenderPage renders page as a standalone HTML document.
func (s *Site) RenderPage(page *Page) (string, error) {
	session := s.Open(page)
	defer session.Close()
	return session.Document()
}

func document(fragment string) string {
	var sb strings.Builder
	sb.Grow(len(fragment) + 16)
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(fragment)
	sb.WriteString("\n")
	return sb.String()
}
