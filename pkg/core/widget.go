package core

// Widget is an immutable description of part of the page.
type Widget interface {
	// CreateElement returns a new, unmounted element for this widget type.
	CreateElement() Element
	// Key distinguishes siblings of the same type across rebuilds.
	Key() any
}

// StatelessWidget describes markup that depends only on its own fields.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates a State that outlives individual builds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// BuildContext is the handle a widget receives while building.
type BuildContext interface {
	// Widget returns the widget currently configuring this location.
	Widget() Widget
	// Owner returns the BuildOwner driving the tree, or nil.
	Owner() *BuildOwner
	// FindAncestor returns the nearest ancestor matching predicate.
	FindAncestor(predicate func(Element) bool) Element
}

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return &StatelessElement{} }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return &StatefulElement{} }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// MarkupBase provides default CreateElement and Key implementations for
// markup widgets.
type MarkupBase struct{}

// CreateElement returns a new MarkupElement.
func (MarkupBase) CreateElement() Element { return &MarkupElement{} }

// Key returns nil (no key).
func (MarkupBase) Key() any { return nil }
