package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oggyb/lovespark/internal/config"
	"github.com/oggyb/lovespark/internal/logger"
	"github.com/oggyb/lovespark/internal/seed"
	"github.com/oggyb/lovespark/internal/store"
)

var opts seed.Options

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo accounts and random swipes into the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		logger.InitFromConfig(cfg)
		log := logger.L()

		s, err := store.Open(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer func() { _ = s.Close() }()

		summary, err := seed.Run(cmd.Context(), s, log, opts)
		if err != nil {
			return err
		}
		if summary.Skipped {
			fmt.Printf("Store already has %d users; use --reset to reseed.\n", summary.Users)
			return nil
		}
		fmt.Printf("Seeding completed: %d users, outcomes %v. Password: %q\n",
			summary.Users, summary.Outcomes, seed.DemoPassword)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&opts.Reset, "reset", false, "delete existing accounts first")
	rootCmd.Flags().IntVar(&opts.Decisions, "decisions", 40, "number of random swipes to record")
	rootCmd.Flags().Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed for the swipes")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
