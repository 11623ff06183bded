package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildOut  string
	buildJobs int
)

func init() {
	buildCmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Render every page in a directory",
		Long: `Render every *.yaml page in dir (default: the project's "pages"
directory) to <slug>.html in the output directory. Pages render in parallel.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "public", "output directory")
	buildCmd.Flags().IntVarP(&buildJobs, "jobs", "j", runtime.GOMAXPROCS(0), "pages rendered at once")
	RegisterCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, cfg, closeFn, err := openSite()
	if err != nil {
		return err
	}
	defer closeFn()

	src := filepath.Join(cfg.Root, "pages")
	if len(args) == 1 {
		src = args[0]
	}

	results, err := s.Build(cmd.Context(), src, buildOut, buildJobs)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Debug("page built", zap.String("source", r.Source), zap.String("out", r.Output))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Built %d page(s) into %s\n", len(results), buildOut)
	return nil
}
