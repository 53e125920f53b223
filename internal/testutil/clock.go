package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Date is the calendar day every test clock starts on.
var Date = time.Date(2024, time.March, 9, 0, 0, 0, 0, time.Local)

// At returns the local time hh:mm:ss on Date.
func At(hh, mm, ss int) time.Time {
	return time.Date(Date.Year(), Date.Month(), Date.Day(), hh, mm, ss, 0, time.Local)
}

// ClockAt returns a fake clock frozen at hh:mm:ss local time.
//
// The clock only moves when the test calls Advance, so frames rendered from
// it are byte-for-byte reproducible.
func ClockAt(hh, mm, ss int) *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(At(hh, mm, ss))
}
