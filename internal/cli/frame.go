package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/roach88/binclock/internal/display"
)

// FrameOptions holds flags for the frame command.
type FrameOptions struct {
	*RootOptions
	At string // HH:MM:SS; empty means now

	// Clock overrides the time source when At is empty (for testing).
	Clock clockwork.Clock
}

// NewFrameCommand creates the frame command.
func NewFrameCommand(rootOpts *RootOptions) *cobra.Command {
	return newFrameCommand(&FrameOptions{RootOptions: rootOpts})
}

func newFrameCommand(opts *FrameOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print a single frame",
		Long: `Print one clock frame and exit. The screen is not cleared.

Example:
  binclock frame
  binclock frame --at 09:05:07`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFrame(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "render this local time (HH:MM:SS) instead of now")

	return cmd
}

func printFrame(opts *FrameOptions, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	clock := opts.Clock
	if opts.At != "" {
		t, err := time.ParseInLocation(display.ClockLayout, opts.At, time.Local)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --at %q (want HH:MM:SS)", opts.At), err)
		}
		clock = clockwork.NewFakeClockAt(time.Date(2000, time.January, 1,
			t.Hour(), t.Minute(), t.Second(), 0, time.Local))
	}

	r := display.New(clock)
	r.Update()
	logger.Debug("frame", "clock", r.Formatted())

	if err := r.Draw(cmd.OutOrStdout()); err != nil {
		return WrapExitError(ExitFailure, "failed to print frame", err)
	}
	return nil
}
