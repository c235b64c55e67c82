package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-scoring/internal/shared/telemetry"
)

const app = "scorecli"

// cliConfig is read from scorecli.yaml, SCORECLI_* env vars and flags.
type cliConfig struct {
	Format         string `mapstructure:"format"`
	Level          string `mapstructure:"level"`
	MaxUploadBytes int64  `mapstructure:"max-upload-bytes"`
	Debug          bool   `mapstructure:"debug"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           app,
		Short:         "scorecli assesses resume quality and calibrates match scores",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if v.GetBool("debug") {
				telemetry.Init("debug")
			} else {
				telemetry.Init("warn")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is scorecli.yaml in current directory)")
	root.PersistentFlags().StringP("format", "o", "json", "output format: json or yaml")
	root.PersistentFlags().BoolP("debug", "d", false, "debug logging")
	_ = v.BindPFlag("format", root.PersistentFlags().Lookup("format"))
	_ = v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	v.SetDefault("level", "mid")
	v.SetDefault("max-upload-bytes", 10<<20)

	root.AddCommand(
		newAssessCmd(v),
		newEvaluateCmd(v),
		newWeightsCmd(v),
		newBandCmd(v),
	)
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(strings.ToUpper(app))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func loadConfig(v *viper.Viper) (cliConfig, error) {
	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case "", "json":
		cfg.Format = "json"
	case "yaml", "yml":
		cfg.Format = "yaml"
	default:
		return cliConfig{}, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return cfg, nil
}
