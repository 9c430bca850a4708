package cmd

import (
	"fmt"
	"runtime"

	"github.com/krau/assetlist/config"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print the version number of assetlist",
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "assetlist version: %s %s/%s\nBuildTime: %s, Commit: %s\n",
				config.Version, runtime.GOOS, runtime.GOARCH, config.BuildTime, config.GitCommit)
		},
	}
}
