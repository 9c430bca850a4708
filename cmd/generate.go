package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/krau/assetlist/config"
	"github.com/krau/assetlist/output"
	"github.com/krau/assetlist/pkg/assettypes"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Write the asset listing to a data file for the site generator",
		RunE:    runGenerate,
	}
	config.RegisterGenerateFlags(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx).WithPrefix("generate")
	c := config.C()

	f, err := c.OutputFormat()
	if err != nil {
		return err
	}
	l, err := newLister()
	if err != nil {
		return err
	}
	descs, err := l.List(ctx)
	if err != nil {
		return err
	}
	if err := output.WriteFile(c.Output.Path, f, descs); err != nil {
		return err
	}
	logger.Info("Wrote asset data",
		"file", c.Output.Path,
		"format", f,
		"count", len(descs),
		"size", humanize.IBytes(uint64(assettypes.TotalSize(descs))),
	)
	return nil
}
