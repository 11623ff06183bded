package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/docskit/internal/props"
	"github.com/go-drift/docskit/internal/site"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "props <dir> <Type>",
		Short: "Generate a props block from a Go struct",
		Long: `Print a page block documenting the exported fields of a struct type,
ready to paste into a page's blocks list:

  docskit props ./pkg/widgets DateTimePicker`,
		Args: cobra.ExactArgs(2),
		RunE: runProps,
	})
}

func runProps(cmd *cobra.Command, args []string) error {
	defs, err := props.Extract(args[0], args[1])
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode([]site.Block{{Type: site.BlockProps, Props: defs}}); err != nil {
		return err
	}
	return enc.Close()
}
