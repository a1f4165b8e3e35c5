package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fystack/builder-client/pkg/common/config"
	"github.com/fystack/builder-client/pkg/common/logger"
	"github.com/spf13/cobra"
)

// Exit codes beyond the usual 0/1.
const (
	exitNoAuction = 3
)

// exitError ends the process with code after printing nothing further.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type rootOptions struct {
	configPath string
	chainID    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "searcher",
		Short:         "Query blockspace auctions and submit bids to a builder.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			logger.Init(&logger.Options{
				Level:      level,
				Writer:     os.Stderr,
				TimeFormat: time.RFC3339,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to config file.")
	flags.StringVar(&opts.chainID, "chain-id", "", "Chain to act on (defaults to chain_id from config).")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logs.")

	cmd.AddCommand(
		newAuctionCmd(opts),
		newBidCmd(opts),
		newJournalCmd(opts),
		newWatchCmd(opts),
	)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, ee.err)
		os.Exit(ee.code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
