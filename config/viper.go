package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/krau/assetlist/lister"
	"github.com/krau/assetlist/pkg/enums/format"
	"github.com/krau/assetlist/pkg/enums/statpolicy"
	"github.com/spf13/viper"
)

type Config struct {
	Root        string `toml:"root" mapstructure:"root" json:"root"`
	Dir         string `toml:"dir" mapstructure:"dir" json:"dir"`
	OnStatError string `toml:"on_stat_error" mapstructure:"on_stat_error" json:"on_stat_error"`
	Workers     int    `toml:"workers" mapstructure:"workers" json:"workers"`

	Log    logConfig    `toml:"log" mapstructure:"log" json:"log"`
	Output outputConfig `toml:"output" mapstructure:"output" json:"output"`
	Serve  serveConfig  `toml:"serve" mapstructure:"serve" json:"serve"`
}

type logConfig struct {
	Level string `toml:"level" mapstructure:"level" json:"level"`
}

type outputConfig struct {
	Path   string `toml:"path" mapstructure:"path" json:"path"`
	Format string `toml:"format" mapstructure:"format" json:"format"`
}

type serveConfig struct {
	Host string `toml:"host" mapstructure:"host" json:"host"`
	Port int    `toml:"port" mapstructure:"port" json:"port"`
}

var cfg = &Config{}

func C() *Config {
	return cfg
}

// Init loads configuration from file, environment and bound flags.
// A missing default config file is not an error; a missing explicit one is.
func Init(ctx context.Context, configFile ...string) error {
	viper.SetConfigName("assetlist")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/assetlist/")
	explicit := len(configFile) > 0 && configFile[0] != ""
	if explicit {
		// viper picks the parser from the extension of an explicit file
		viper.SetConfigFile(configFile[0])
		if filepath.Ext(configFile[0]) == "" {
			viper.SetConfigType("toml")
		}
	} else {
		viper.SetConfigType("toml")
	}
	viper.SetEnvPrefix("ASSETLIST")
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.SetDefault("root", ".")
	viper.SetDefault("dir", lister.DefaultDir)
	viper.SetDefault("on_stat_error", string(statpolicy.Skip))
	viper.SetDefault("workers", 1)

	viper.SetDefault("log.level", "info")

	viper.SetDefault("output.path", "_data/filelist.json")
	viper.SetDefault("output.format", "")

	viper.SetDefault("serve.host", "")
	viper.SetDefault("serve.port", 8080)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		log.FromContext(ctx).Debug("no config file found, using defaults")
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

func (c *Config) Validate() error {
	if _, err := statpolicy.Parse(c.OnStatError); err != nil {
		return fmt.Errorf("invalid on_stat_error: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Output.Format != "" {
		if _, err := format.Parse(c.Output.Format); err != nil {
			return fmt.Errorf("invalid output.format: %w", err)
		}
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be in 1..65535, got %d", c.Serve.Port)
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	return nil
}

// ListerConfig converts the loaded settings for lister.NewOS.
func (c *Config) ListerConfig() lister.Config {
	policy, _ := statpolicy.Parse(c.OnStatError)
	return lister.Config{
		Dir:     c.Dir,
		Policy:  policy,
		Workers: c.Workers,
	}
}

// OutputFormat returns the configured format, or the one implied by the output path.
func (c *Config) OutputFormat() (format.Format, error) {
	if c.Output.Format != "" {
		return format.Parse(c.Output.Format)
	}
	return format.FromPath(c.Output.Path)
}

func (c *Config) ServeAddr() string {
	return fmt.Sprintf("%s:%d", c.Serve.Host, c.Serve.Port)
}
