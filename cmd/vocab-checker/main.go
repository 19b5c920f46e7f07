// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vocab-checker CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/vocab-checker/internal/logging"
	"github.com/pdiddy/vocab-checker/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once flags and config are read.
var logger = zap.NewNop()

// rootCmd is the base command for the vocab-checker CLI.
var rootCmd = &cobra.Command{
	Use:   "vocab-checker",
	Short: "Find Duolingo words that are not yet in an Anki collection",
	Long: `vocab-checker compares the word list copied from the Duolingo "Words"
page against the notes of an Anki collection and reports the words that no
note contains. The collection is opened read-only.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logConfig(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vocab-checker.yaml or ~/.config/vocab-checker/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON diagnostics to this rotated file")
	rootCmd.PersistentFlags().Bool("log-json", false, "write console diagnostics as JSON")

	bindFlags(rootCmd, map[string]string{
		"log.level": "log-level",
		"log.file":  "log-file",
		"log.json":  "log-json",
	}, true)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vocab-checker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vocab-checker"))
		}
	}

	viper.SetEnvPrefix("VOCAB_CHECKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

// bindFlags binds each viper key to the named flag of cmd.
func bindFlags(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level: viper.GetString("log.level"),
		File:  viper.GetString("log.file"),
		JSON:  viper.GetBool("log.json"),
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
