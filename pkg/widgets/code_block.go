package widgets

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
)

// HighlightStyle is the chroma style used for highlighted code and for
// HighlightCSS.
const HighlightStyle = "github"

// CodeBlock shows a code sample under a language label.
//
// The language is read from a "language-xxx" ClassName, as produced by
// Markdown fences, and defaults to "text". With Highlight set, the code is
// tokenized by chroma and emitted as classed spans; languages chroma does
// not know render as plain text.
type CodeBlock struct {
	core.StatelessBase
	ClassName string
	Code      string
	Highlight bool
}

// Language returns the language named by ClassName.
func (c CodeBlock) Language() string {
	if lang := strings.Replace(c.ClassName, "language-", "", 1); lang != "" {
		return lang
	}
	return "text"
}

func (c CodeBlock) Build(ctx core.BuildContext) core.Widget {
	language := c.Language()

	var body core.Widget = markup.TextOf(c.Code)
	if c.Highlight {
		if highlighted, ok := highlight(language, c.Code); ok {
			body = markup.Raw{HTML: highlighted}
		}
	}

	return markup.Element{
		Tag:   "div",
		Class: "code-block",
		Children: []core.Widget{
			markup.Element{
				Tag:   "div",
				Class: "code-block__header",
				Children: []core.Widget{
					markup.Element{Tag: "span", Class: "code-block__language", Children: []core.Widget{markup.TextOf(language)}},
				},
			},
			markup.Element{
				Tag:   "pre",
				Class: markup.Classes("code-block__pre", c.ClassName),
				Children: []core.Widget{
					markup.Element{Tag: "code", Children: []core.Widget{body}},
				},
			},
		},
	}
}

func highlight(language, source string) (string, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		reportHighlight(language, err)
		return "", false
	}
	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true), chromahtml.PreventSurroundingPre(true))
	if err := formatter.Format(&sb, styles.Get(HighlightStyle), iterator); err != nil {
		reportHighlight(language, err)
		return "", false
	}
	return sb.String(), true
}

func reportHighlight(language string, err error) {
	errors.Report(&errors.DocsError{
		Op:   "widgets.CodeBlock",
		Kind: errors.KindParse,
		Key:  language,
		Err:  err,
	})
}

// HighlightCSS returns the stylesheet for the classes emitted by
// highlighted code blocks.
func HighlightCSS() (string, error) {
	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(HighlightStyle)); err != nil {
		return "", err
	}
	return sb.String(), nil
}
