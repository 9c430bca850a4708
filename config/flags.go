package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RegisterFlags adds the listing flags shared by every subcommand.
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "config file path")
	flags.String("root", "", "site root the asset directory is relative to")
	flags.StringP("dir", "d", "", "asset directory (default \"assets\")")
	flags.String("on-stat-error", "", "what to do with entries that cannot be stat'd: skip or fail")
	flags.IntP("workers", "w", 0, "number of concurrent stat calls")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	viper.BindPFlag("root", flags.Lookup("root"))
	viper.BindPFlag("dir", flags.Lookup("dir"))
	viper.BindPFlag("on_stat_error", flags.Lookup("on-stat-error"))
	viper.BindPFlag("workers", flags.Lookup("workers"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

func RegisterGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("out", "o", "", "data file to write (default \"_data/filelist.json\")")
	flags.StringP("format", "f", "", "data file format: json, yaml or toml (default inferred from --out)")

	viper.BindPFlag("output.path", flags.Lookup("out"))
	viper.BindPFlag("output.format", flags.Lookup("format"))
}

func RegisterServeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("host", "", "address to listen on")
	flags.IntP("port", "p", 0, "port to listen on (default 8080)")

	viper.BindPFlag("serve.host", flags.Lookup("host"))
	viper.BindPFlag("serve.port", flags.Lookup("port"))
}

func GetConfigFile(cmd *cobra.Command) string {
	configFile, _ := cmd.Flags().GetString("config")
	return configFile
}
