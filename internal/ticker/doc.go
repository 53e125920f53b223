// Package ticker drives the clock display.
//
// A Loop owns a display.Renderer and repeats one tick per second:
//
//  1. write the clear-screen sequence
//  2. Renderer.Update
//  3. Renderer.Draw
//  4. wait Interval on the injected clock
//
// The loop runs on the caller's goroutine and stops when its context is
// cancelled. Waiting goes through clockwork.Clock so tests can advance time
// instead of sleeping.
package ticker
