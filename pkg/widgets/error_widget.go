package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/errors"
	"github.com/go-drift/docskit/pkg/markup"
)

// InstallErrorWidget makes failed builds render an ErrorWidget in place of
// the failing subtree. Verbose shows the panic value.
func InstallErrorWidget(verbose bool) {
	core.SetErrorWidgetBuilder(func(err *errors.BuildError) core.Widget {
		return ErrorWidget{Error: err, Verbose: verbose}
	})
}

// ErrorWidget displays a notice where a widget failed to build.
type ErrorWidget struct {
	core.StatelessBase
	// Error is the build error that occurred.
	Error *errors.BuildError
	// Verbose shows the full error instead of a generic message.
	Verbose bool
}

func (e ErrorWidget) Build(ctx core.BuildContext) core.Widget {
	var errorText string
	if e.Error != nil {
		if e.Verbose {
			errorText = e.Error.Error()
		} else {
			errorText = "An error occurred"
		}
	} else {
		errorText = "Unknown error"
	}

	return markup.Element{
		Tag:   "div",
		Class: "build-error",
		Attrs: []html.Attribute{markup.Attr("role", "alert")},
		Children: []core.Widget{
			markup.Element{Tag: "strong", Class: "build-error__icon", Children: []core.Widget{markup.TextOf("!")}},
			markup.Element{Tag: "span", Class: "build-error__message", Children: []core.Widget{markup.TextOf(errorText)}},
		},
	}
}
