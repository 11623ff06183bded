package site

import (
	"errors"
	"fmt"

	"github.com/go-drift/docskit/pkg/core"
	"github.com/go-drift/docskit/pkg/markup"
)

// ErrNoControl is returned by Session.Change when no control has the id.
var ErrNoControl = errors.New("no control with that id")

// Session is a mounted page. Edits delivered through Change go through the
// same callbacks as browser input, so playground values are persisted.
type Session struct {
	page  *Page
	owner *core.BuildOwner
	root  core.Element
}

// Open mounts page.
func (s *Site) Open(page *Page) *Session {
	owner := core.NewBuildOwner()
	return &Session{
		page:  page,
		owner: owner,
		root:  core.Mount(s.PageWidget(page), owner),
	}
}

// Page returns the mounted page.
func (s *Session) Page() *Page {
	return s.page
}

// Change delivers value to the control with the given element id, then
// rebuilds.
func (s *Session) Change(id, value string) error {
	var target *core.MarkupElement
	core.Walk(s.root, func(e core.Element) bool {
		m, ok := e.(*core.MarkupElement)
		if !ok {
			return true
		}
		if w, ok := m.Widget().(markup.Element); ok && w.ID == id && w.OnChange != nil {
			target = m
			return false
		}
		return true
	})
	if target == nil {
		return fmt.Errorf("%s: %q: %w", s.page.Slug, id, ErrNoControl)
	}
	target.Dispatch(core.Event{Type: core.EventChange, Value: value})
	s.owner.FlushBuild()
	return nil
}

// Document renders the page as a standalone HTML document.
func (s *Session) Document() (string, error) {
	s.owner.FlushBuild()
	out, err := core.RenderString(s.root)
	if err != nil {
		return "", err
	}
	return document(out), nil
}

// Close unmounts the page.
func (s *Session) Close() {
	if s.root != nil {
		s.root.Unmount()
		s.root = nil
	}
}
