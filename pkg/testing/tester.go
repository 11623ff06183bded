package testing

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/net/html"

	"github.com/go-drift/docskit/pkg/core"
)

// ErrNoMatch is returned when an interaction finder matches nothing.
var ErrNoMatch = errors.New("finder matched no elements")

// WidgetTester mounts widgets without a host page. It drives the same build
// and render phases as a real page and uses a fake clock.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	clock      *FakeClock
}

// NewWidgetTester creates a tester. Call Cleanup when done, or use
// NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		clock:      NewFakeClock(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current tree, disposing every state.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// Clock returns the fake clock.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// BuildOwner returns the tester's build owner.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// Root returns the root element, or nil before PumpWidget.
func (t *WidgetTester) Root() core.Element {
	return t.root
}

// PumpWidget mounts widget as the new root, replacing any previous tree,
// and flushes pending builds.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.Cleanup()
	if widget == nil {
		return errors.New("PumpWidget: nil widget")
	}
	t.root = core.Mount(widget, t.buildOwner)
	t.buildOwner.FlushBuild()
	return nil
}

// Pump flushes pending rebuilds.
func (t *WidgetTester) Pump() {
	t.buildOwner.FlushBuild()
}

// Find evaluates finder against the current tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	var elements []core.Element
	if t.root != nil {
		elements = finder.Evaluate(t.root)
	}
	return FinderResult{elements: elements, finder: finder}
}

// Nodes renders the current tree.
func (t *WidgetTester) Nodes() []*html.Node {
	return core.Render(t.root)
}

// HTML renders the current tree as an HTML fragment.
func (t *WidgetTester) HTML() string {
	out, err := core.RenderString(t.root)
	if err != nil {
		return fmt.Sprintf("<!-- render error: %v -->", err)
	}
	return out
}

// EnterText delivers a change event carrying value to the first markup
// element matched by finder, then pumps.
func (t *WidgetTester) EnterText(finder Finder, value string) error {
	return t.dispatch(finder, core.Event{Type: core.EventChange, Value: value})
}

// Tap delivers a click event to the first markup element matched by
// finder, then pumps.
func (t *WidgetTester) Tap(finder Finder) error {
	return t.dispatch(finder, core.Event{Type: core.EventClick})
}

func (t *WidgetTester) dispatch(finder Finder, event core.Event) error {
	result := t.Find(finder)
	for _, element := range result.All() {
		if markup, ok := element.(*core.MarkupElement); ok {
			markup.Dispatch(event)
			t.Pump()
			return nil
		}
	}
	return fmt.Errorf("%s %s: %w", event.Type, finder.Description(), ErrNoMatch)
}
