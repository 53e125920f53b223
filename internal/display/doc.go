// Package display renders the clock grid.
//
// A Renderer owns six bcd.Columns, one per digit of HHMMSS. Update refreshes
// them from its clock; Draw writes the current state as a fixed text frame:
//
//	     HH  MM  SS
//	08:  .x  ..  ..
//	04:  ..  .x  .x
//	02:  ..  ..  .x
//	01:  .x  .x  .x
//
// The frame above is 09:05:07. Draw never mutates state, so drawing twice
// between updates produces identical bytes.
package display
