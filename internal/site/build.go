package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/docskit/pkg/errors"
)

// BuildResult describes one rendered page.
type BuildResult struct {
	Source string
	Output string
	Slug   string
}

// FindPages returns the YAML page files in dir, sorted. docskit.yaml is
// configuration and is skipped.
func FindPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var pages []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if name == "docskit.yaml" {
			continue
		}
		pages = append(pages, filepath.Join(dir, name))
	}
	slices.Sort(pages)
	return pages, nil
}

// Build renders every page in srcDir into outDir as <slug>.html. Pages are
// rendered concurrently, at most parallel at a time (unbounded when
// parallel < 1). The first failure cancels pages not yet started.
func (s *Site) Build(ctx context.Context, srcDir, outDir string, parallel int) ([]BuildResult, error) {
	sources, err := FindPages(srcDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]BuildResult, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, source := range sources {
		g.Go(func() (err error) {
			defer errors.Recover("site.Build "+source, &err)
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.buildPage(source, outDir)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(results))
	for _, r := range results {
		if prev, ok := seen[r.Slug]; ok {
			return nil, fmt.Errorf("pages %s and %s share slug %q", prev, r.Source, r.Slug)
		}
		seen[r.Slug] = r.Source
	}
	return results, nil
}

func (s *Site) buildPage(source, outDir string) (BuildResult, error) {
	page, err := LoadPage(source)
	if err != nil {
		return BuildResult{}, err
	}
	doc, err := s.RenderPage(page)
	if err != nil {
		return BuildResult{}, fmt.Errorf("render %s: %w", source, err)
	}
	output := filepath.Join(outDir, page.Slug+".html")
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return BuildResult{}, err
	}
	return BuildResult{Source: source, Output: output, Slug: page.Slug}, nil
}
