package ticker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/roach88/binclock/internal/display"
)

// Interval is the wait between frames.
const Interval = time.Second

// ClearScreen is the ANSI erase-display sequence written before every frame.
const ClearScreen = "\x1b[2J"

// Loop repeatedly clears the terminal and draws the current time.
type Loop struct {
	out      io.Writer
	clock    clockwork.Clock
	renderer *display.Renderer
	logger   *slog.Logger
	runID    string
	ticks    uint64
}

// New creates a loop writing frames to out.
//
// A nil clock means the host clock, a nil logger means slog.Default() and a
// nil ids means UUIDv7Generator.
func New(out io.Writer, clock clockwork.Clock, logger *slog.Logger, ids RunIDGenerator) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	runID := ids.Generate()

	return &Loop{
		out:      out,
		clock:    clock,
		renderer: display.New(clock),
		logger:   logger.With("run_id", runID),
		runID:    runID,
	}
}

// RunID returns the identifier attached to this loop's logs.
func (l *Loop) RunID() string {
	return l.runID
}

// Ticks returns how many frames have been written.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Tick clears the screen, refreshes the renderer and draws one frame.
func (l *Loop) Tick() error {
	if _, err := io.WriteString(l.out, ClearScreen+"\n"); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	l.renderer.Update()
	if err := l.renderer.Draw(l.out); err != nil {
		return err
	}

	l.ticks++
	l.logger.Debug("tick", "seq", l.ticks, "clock", l.renderer.Formatted())
	return nil
}

// Run ticks once per Interval until ctx is cancelled.
//
// Returns ctx.Err() on cancellation, or the first write error.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("clock starting", "interval", Interval)

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("clock stopping: context cancelled", "ticks", l.ticks)
			return err
		}

		if err := l.Tick(); err != nil {
			l.logger.Error("tick failed", "seq", l.ticks+1, "error", err)
			return err
		}

		select {
		case <-ctx.Done():
			l.logger.Info("clock stopping: context cancelled", "ticks", l.ticks)
			return ctx.Err()
		case <-l.clock.After(Interval):
		}
	}
}
