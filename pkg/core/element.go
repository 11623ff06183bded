package core

import (
	"reflect"
	"time"

	"github.com/go-drift/docskit/pkg/errors"
)

// Element is a widget instantiated at a location in the tree.
type Element interface {
	BuildContext
	Depth() int
	Mount(parent Element, owner *BuildOwner)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)

	base() *elementBase
}

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) base() *elementBase { return e }

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) Owner() *BuildOwner {
	return e.buildOwner
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	for current := e.parent; current != nil; current = current.base().parent {
		if predicate(current) {
			return current
		}
	}
	return nil
}

func (e *elementBase) mount(parent Element, owner *BuildOwner) {
	e.parent = parent
	e.buildOwner = owner
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
}

// safeBuild executes a build function with panic recovery.
// If the build panics, it reports the error and returns the error widget.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBuildError(buildErr)
		if builder := GetErrorWidgetBuilder(); builder != nil {
			return builder(buildErr)
		}
		return nil
	}
	return built
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

func (e *StatelessElement) Mount(parent Element, owner *BuildOwner) {
	e.self = e
	e.mount(parent, owner)
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget {
		return widget.Build(e)
	})
	e.child = updateChild(e.child, built, e)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// State returns the element's state object.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, owner *BuildOwner) {
	e.self = e
	e.mount(parent, owner)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.state.Build(e)
	})
	e.child = updateChild(e.child, built, e)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// MarkupElement hosts a MarkupWidget and its child elements.
type MarkupElement struct {
	elementBase
	children []Element
}

func (e *MarkupElement) Mount(parent Element, owner *BuildOwner) {
	e.self = e
	e.mount(parent, owner)
	e.RebuildIfNeeded()
}

func (e *MarkupElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *MarkupElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *MarkupElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(MarkupWidget)
	next := widget.ChildWidgets()

	children := make([]Element, 0, len(next))
	for i, w := range next {
		var existing Element
		if i < len(e.children) {
			existing = e.children[i]
		}
		if child := updateChild(existing, w, e); child != nil {
			children = append(children, child)
		}
	}
	for i := len(next); i < len(e.children); i++ {
		e.children[i].Unmount()
	}
	e.children = children
}

func (e *MarkupElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// Dispatch delivers an event to the hosted widget. It reports whether the
// widget handled it.
func (e *MarkupElement) Dispatch(event Event) bool {
	target, ok := e.widget.(EventTarget)
	if !ok {
		return false
	}
	return target.HandleEvent(event)
}

// Mount inflates widget as the root of a tree driven by owner.
func Mount(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := inflateWidget(widget)
	element.Mount(nil, owner)
	return element
}

func updateChild(existing Element, widget Widget, parent Element) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget)
	element.Mount(parent, parent.Owner())
	return element
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget) Element {
	element := widget.CreateElement()
	element.base().widget = widget
	return element
}
