// Package core provides the widget and element framework, its lifecycle,
// and the state hooks.
//
// Widgets are immutable descriptions of part of a page. Elements are their
// instantiation in a tree: they keep state alive across rebuilds and, at the
// leaves, produce HTML nodes through MarkupWidget.
//
// # Stateless and Stateful Widgets
//
// Embed StatelessBase and implement Build for widgets that only depend on
// their fields:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return markup.Text{Content: "Hello, " + g.Name}
//	}
//
// Embed StatefulBase and implement CreateState for widgets that own state.
// The state embeds StateBase:
//
//	type counterState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
// # Hooks
//
// Managed holds an in-memory value and schedules a rebuild on change.
// UsePersisted does the same for a value mirrored to a storage.Backend: the
// value survives the page when the backend works and silently stays
// in memory when it does not.
//
// # Rendering
//
// Mount a root widget with Mount, drive rebuilds with BuildOwner.FlushBuild,
// and turn the tree into markup with Render or RenderString.
package core
