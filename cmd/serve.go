package cmd

import (
	"github.com/krau/assetlist/api"
	"github.com/krau/assetlist/config"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the asset listing over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLister()
			if err != nil {
				return err
			}
			return api.Serve(cmd.Context(), config.C().ServeAddr(), l)
		},
	}
	config.RegisterServeFlags(cmd)
	return cmd
}
