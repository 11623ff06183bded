package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/docskit/internal/site"
)

var (
	renderOut  string
	renderSets []string
)

func init() {
	renderCmd := &cobra.Command{
		Use:   "render <page.yaml>",
		Short: "Render one page to HTML",
		Long: `Render a page description to a standalone HTML document.

Use --set to edit a playground control before rendering, the same way a
reader would in the browser. The edited value is kept in the configured
storage backend:

  docskit render pages/datetime.yaml --set datetime-publish=2024-03-10`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the document to this file instead of stdout")
	renderCmd.Flags().StringArrayVar(&renderSets, "set", nil, "edit a control before rendering (element-id=value, repeatable)")
	RegisterCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	edits, err := parseEdits(renderSets)
	if err != nil {
		return err
	}

	s, _, closeFn, err := openSite()
	if err != nil {
		return err
	}
	defer closeFn()

	page, err := site.LoadPage(args[0])
	if err != nil {
		return err
	}

	session := s.Open(page)
	defer session.Close()
	for _, e := range edits {
		if err := session.Change(e[0], e[1]); err != nil {
			return err
		}
		logger.Debug("control edited", zap.String("id", e[0]), zap.String("value", e[1]))
	}
	doc, err := session.Document()
	if err != nil {
		return err
	}

	if renderOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(renderOut), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(renderOut, []byte(doc), 0o644); err != nil {
		return err
	}
	logger.Info("page rendered", zap.String("page", page.Slug), zap.String("out", renderOut))
	return nil
}

func parseEdits(raw []string) ([][2]string, error) {
	edits := make([][2]string, 0, len(raw))
	for _, r := range raw {
		id, value, ok := strings.Cut(r, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --set %q (want element-id=value)", r)
		}
		edits = append(edits, [2]string{id, value})
	}
	return edits, nil
}
