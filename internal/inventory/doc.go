// Package inventory turns raw MediaInfo documents into typed media records.
//
// It owns the track normalization rules (codec aliases, scan type, channel
// labels, bitrate display strings), the record builder that groups a file's
// tracks and drops files without a container, and the named comparators used
// to order records before rendering.
//
// Field problems never abort a file: normalizers fall back to the best raw
// representation and report what they had to paper over as joined errors
// wrapping ErrMissingField or ErrInvalidNumber. Only documents that cannot be
// decoded at all surface as ErrExtractionParse.
package inventory
