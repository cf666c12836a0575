// Package textutil provides text measuring and fitting helpers for fixed-width
// output.
//
// Widths are counted in Unicode scalar values, not bytes or display cells, so
// the plain table layout is stable regardless of the terminal's font.
package textutil
