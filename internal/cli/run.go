package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/roach88/binclock/internal/ticker"
)

// RunOptions holds settings for the run command.
type RunOptions struct {
	*RootOptions

	// Clock overrides the time source (for testing).
	// If nil, defaults to the host clock.
	Clock clockwork.Clock

	// RunIDs overrides the run identifier generator (for testing).
	// If nil, defaults to ticker.UUIDv7Generator.
	RunIDs ticker.RunIDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the live clock",
		Long: `Clear the terminal and redraw the binary clock once per second.

Runs until interrupted (Ctrl-C) or terminated.

Example:
  binclock run
  binclock run --verbose 2>clock.log`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(opts, cmd)
		},
	}

	return cmd
}

func runClock(opts *RunOptions, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan) // Prevent signal handler leak

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
			// Parent context cancelled (e.g., from test)
		}
	}()

	loop := ticker.New(cmd.OutOrStdout(), opts.Clock, logger, opts.RunIDs)

	err := loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return WrapExitError(ExitFailure, "clock stopped", err)
	}

	logger.Info("clock stopped gracefully", "run_id", loop.RunID(), "ticks", loop.Ticks())
	return nil
}
