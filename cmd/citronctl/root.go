package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"citron-srv/config"
	"citron-srv/internal/core"
	"citron-srv/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "citronctl",
	Short:         "Run Citron report jobs and diagnostics by hand",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is citron-config.yaml in ./config, . or /etc/citron)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "warn", "log level: debug, info, warn, error")
}

// session is a connected set of domains for one command.
type session struct {
	ctx     context.Context
	logger  log.Logger
	domains *core.Domains
	close   func()
}

func openSession(cmd *cobra.Command) (*session, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    logLevel,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	ctx := cmd.Context()
	infra, cleanup, err := core.Connect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	domains, err := core.Setup(ctx, infra)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &session{ctx: ctx, logger: logger, domains: domains, close: cleanup}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
