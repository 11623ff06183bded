package testing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the rendered HTML of a tree, one element per line.
type Snapshot struct {
	Lines []string
}

// CaptureSnapshot renders the current tree into an indented snapshot.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	s := &Snapshot{}
	for _, n := range t.Nodes() {
		s.capture(n, 0)
	}
	return s
}

func (s *Snapshot) capture(n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			s.Lines = append(s.Lines, indent+html.EscapeString(text))
		}
		return
	case html.ElementNode:
		var sb strings.Builder
		sb.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			sb.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
		}
		sb.WriteString(">")
		s.Lines = append(s.Lines, indent+sb.String())
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.capture(c, depth+1)
	}
}

// String returns the snapshot as it is stored on disk.
func (s *Snapshot) String() string {
	return strings.Join(s.Lines, "\n") + "\n"
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// DOCSKIT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("DOCSKIT_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: DOCSKIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := cmp.Diff(string(data), s.String()); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got):\n%s\nTo update: DOCSKIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.String()), 0o644)
}
