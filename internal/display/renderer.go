package display

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/roach88/binclock/internal/bcd"
)

// Digits is the number of digit columns (HHMMSS).
const Digits = 6

// TimeLayout formats a clock reading as six digits, 24-hour, zero padded.
const TimeLayout = "150405"

// ClockLayout is the human-readable HH:MM:SS form accepted on input.
const ClockLayout = "15:04:05"

// Header labels the column pairs.
const Header = "     HH  MM  SS"

const (
	cellOn    = 'x'
	cellOff   = '.'
	groupGap  = "  "
	groupSize = 2
)

// Renderer holds the binary state of one clock reading.
//
// Not safe for concurrent use; the driver loop owns it.
type Renderer struct {
	clock     clockwork.Clock
	formatted string
	columns   [Digits]bcd.Column
}

// New creates a renderer reading time from clock. All columns start zeroed.
// A nil clock means the host clock.
func New(clock clockwork.Clock) *Renderer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Renderer{clock: clock}
}

// Update reads the clock and refreshes all six columns.
func (r *Renderer) Update() {
	r.Set(r.clock.Now().Local())
}

// Set loads the columns from t as-is, without converting its location.
func (r *Renderer) Set(t time.Time) {
	r.formatted = t.Format(TimeLayout)
	mustBeDigits(r.formatted)

	for i := 0; i < Digits; i++ {
		r.columns[i].Update(int(r.formatted[i] - '0'))
	}
}

// Formatted returns the HHMMSS string of the last update, or "" before any.
func (r *Renderer) Formatted() string {
	return r.formatted
}

// Column returns a copy of the column at index i (0 = tens of hour).
func (r *Renderer) Column(i int) bcd.Column {
	return r.columns[i]
}

// Draw writes the header and the four bit rows to w in one write.
func (r *Renderer) Draw(w io.Writer) error {
	var buf bytes.Buffer
	r.writeFrame(&buf)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Frame returns what Draw would write.
func (r *Renderer) Frame() string {
	var buf bytes.Buffer
	r.writeFrame(&buf)
	return buf.String()
}

func (r *Renderer) writeFrame(buf *bytes.Buffer) {
	buf.WriteString(Header)
	buf.WriteByte('\n')

	for row := 0; row < bcd.Rows; row++ {
		fmt.Fprintf(buf, "%02d:  ", bcd.Weight(row))
		for col := 0; col < Digits; col++ {
			if r.columns[col].Cell(row) {
				buf.WriteByte(cellOn)
			} else {
				buf.WriteByte(cellOff)
			}
			if (col+1)%groupSize == 0 && col != Digits-1 {
				buf.WriteString(groupGap)
			}
		}
		buf.WriteByte('\n')
	}
}

// mustBeDigits panics unless s is exactly Digits ASCII digits.
func mustBeDigits(s string) {
	if len(s) != Digits {
		panic(fmt.Sprintf("display: formatted time %q is not %d digits", s, Digits))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			panic(fmt.Sprintf("display: formatted time %q has non-digit at %d", s, i))
		}
	}
}
