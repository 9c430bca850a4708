package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/krau/assetlist/config"
	"github.com/krau/assetlist/lister"
	"github.com/krau/assetlist/logger"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assetlist",
		Short:         "List the files of a static site's asset directory for templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initAll(cmd)
		},
	}
	config.RegisterFlags(root)
	root.AddCommand(
		newListCmd(),
		newGenerateCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initAll(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if err := config.Init(ctx, config.GetConfigFile(cmd)); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(cmd.ErrOrStderr(), config.C().Log.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	cmd.SetContext(log.WithContext(ctx, l))
	return nil
}

func newLister() (*lister.Lister, error) {
	c := config.C()
	return lister.NewOS(c.Root, c.ListerConfig())
}
