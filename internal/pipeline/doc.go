// Package pipeline fans metadata extraction out over a bounded worker pool
// and gathers the resulting inventory records.
//
// Each candidate path is one independent unit of work: run the extractor,
// decode the payload, build the record. Units never share state; they hand
// their outcome to a single collector goroutine over a channel, and Collect
// returns only after every unit has finished. A failing unit is logged and
// recorded in Result.Failures without disturbing its siblings.
package pipeline
