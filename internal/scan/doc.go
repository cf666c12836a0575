// Package scan discovers candidate media files beneath a root directory.
//
// Walk descends up to a configurable depth, keeps files whose extension is in
// the configured set, and returns them sorted so downstream processing starts
// from a deterministic order. Traversal errors are collected rather than
// aborting the walk.
package scan
