// Package render lays out inventory records as fixed-width text.
//
// The plain layout is the primary output: one line per record, cells padded
// to the widest value in their column (counted in Unicode scalar values) and
// joined with two spaces. Filenames longer than MaxFilename scalars are cut in
// the middle. The box layout renders the same cells through go-pretty with a
// header row for interactive use.
package render
