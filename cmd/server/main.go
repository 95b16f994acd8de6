// Package main is the entry point for the salestrack API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salestrack/internal/config"
	"salestrack/pkg/logger"
)

var (
	cfgFile string
	version = "dev"

	// v holds flag bindings; loadConfig layers file, .env and environment on top.
	v   = viper.New()
	cfg *config.Config
	log *logger.Logger

	rootCmd = &cobra.Command{
		Use:               "salestrack",
		Short:             "Sales tracking API server",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./salestrack.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection string")

	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("database.url", rootCmd.PersistentFlags().Lookup("database-url"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	l, err := logger.New(loaded.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(l)

	cfg, log = loaded, l
	return nil
}
