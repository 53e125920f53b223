// Package bcd converts single decimal digits into binary-coded-decimal columns.
//
// A Column holds four cells, one per bit. Rows are ordered top to bottom by
// descending weight, so row r holds the bit of weight 2^(3-r):
//
//	row 0 -> 8
//	row 1 -> 4
//	row 2 -> 2
//	row 3 -> 1
//
// Callers index a Column by display row directly. There is no separate
// "compute then reverse" step to get wrong.
package bcd
