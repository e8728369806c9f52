package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	formatText = "text"
	formatJSON = "json"

	envPrefix     = "KATAS"
	envConfigFile = "KATAS_CONFIG_FILE"
)

// Config holds the settings shared by every subcommand.
type Config struct {
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

type configKey struct{}

// loadConfig resolves settings from, highest priority first: command-line
// flags, KATAS_* environment variables, the config file, and flag defaults.
//
// The config file is cfgFile if set, then $KATAS_CONFIG_FILE, then
// .katas.yaml in the working directory. Only the last one may be absent.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	explicit := true
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case os.Getenv(envConfigFile) != "":
		v.SetConfigFile(os.Getenv(envConfigFile))
	default:
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".katas")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format != formatText && cfg.Format != formatJSON {
		return Config{}, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, cfg.Format, formatText, formatJSON)
	}
	return cfg, nil
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey{}).(Config); ok {
		return cfg
	}
	return Config{Format: formatText}
}
