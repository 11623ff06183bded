package site

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
	"github.com/go-drift/docskit/pkg/storage"
)

// Playground owns the value of a controlled demo widget and keeps it in
// storage under StorageKey, so edits survive between renders.
//
//	Playground[string]{
//	    Backend:    backend,
//	    StorageKey: "datetime-picker/publish",
//	    Initial:    "2024-03-05T14:30:00",
//	    Control: func(v string, set func(string)) core.Widget {
//	        return widgets.DateTimePickerOf("Publish", v, set)
//	    },
//	}
type Playground[T any] struct {
	core.StatefulBase

	Backend    storage.Backend
	StorageKey string
	Initial    T
	// Control builds the demo widget from the current value and a setter.
	Control func(value T, set func(T)) core.Widget
}

func (p Playground[T]) CreateState() core.State {
	return &playgroundState[T]{}
}

type playgroundState[T any] struct {
	core.StateBase
	value *core.Persisted[T]
}

func (s *playgroundState[T]) InitState() {
	w := s.Widget().(Playground[T])
	s.value = core.UsePersisted(s, w.Backend, w.StorageKey, w.Initial)
}

func (s *playgroundState[T]) Build(ctx core.BuildContext) core.Widget {
	w := ctx.Widget().(Playground[T])
	value := s.value.Value()

	var control core.Widget
	if w.Control != nil {
		control = w.Control(value, s.value.Set)
	}
	return markup.Element{
		Tag:   "div",
		Class: "playground",
		Attrs: []html.Attribute{markup.Attr("data-key", w.StorageKey)},
		Children: []core.Widget{
			control,
			markup.Element{
				Tag:      "output",
				Class:    "playground__value",
				Children: []core.Widget{markup.TextOf(fmt.Sprint(value))},
			},
		},
	}
}
