package inventory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Order names a total order over records.
type Order string

const (
	// OrderStructural compares every field: filename, container, then the
	// video, audio, and subtitle sequences element by element.
	OrderStructural Order = "structural"
	// OrderName compares filenames (case-sensitive), then full paths, so files
	// sharing a base name in different directories keep a stable order.
	OrderName Order = "name"
)

// ParseOrder resolves a user-supplied order name. Empty input selects
// OrderStructural.
func ParseOrder(value string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(value))) {
	case "", OrderStructural:
		return OrderStructural, nil
	case OrderName, "filename":
		return OrderName, nil
	default:
		return "", fmt.Errorf("unsupported sort order %q (want %q or %q)", value, OrderStructural, OrderName)
	}
}

// Comparator returns the comparison function for the order.
func (o Order) Comparator() func(a, b MediaRecord) int {
	if o == OrderName {
		return CompareFilename
	}
	return CompareStructural
}

// Sort orders records in place.
func Sort(records []MediaRecord, order Order) {
	slices.SortStableFunc(records, order.Comparator())
}

// CompareStructural orders records field by field. Track sequences compare
// lexicographically, with a shorter sequence sorting first when it is a
// prefix of the longer one. Path only separates otherwise identical records.
func CompareStructural(a, b MediaRecord) int {
	if c := cmp.Compare(a.Filename, b.Filename); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Container, b.Container); c != 0 {
		return c
	}
	if c := slices.CompareFunc(a.Video, b.Video, compareVideo); c != 0 {
		return c
	}
	if c := slices.CompareFunc(a.Audio, b.Audio, compareAudio); c != 0 {
		return c
	}
	if c := slices.CompareFunc(a.Subs, b.Subs, compareSub); c != 0 {
		return c
	}
	return cmp.Compare(a.Path, b.Path)
}

// CompareFilename orders records by filename and then by source path,
// falling back to CompareStructural so the order stays total.
func CompareFilename(a, b MediaRecord) int {
	if c := cmp.Compare(a.Filename, b.Filename); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Path, b.Path); c != 0 {
		return c
	}
	return CompareStructural(a, b)
}

func compareVideo(a, b VideoTrack) int {
	return cmp.Or(
		cmp.Compare(a.Codec, b.Codec),
		cmp.Compare(a.Bitrate, b.Bitrate),
		cmp.Compare(a.Height, b.Height),
		cmp.Compare(a.ScanType, b.ScanType),
	)
}

func compareAudio(a, b AudioTrack) int {
	return cmp.Or(
		cmp.Compare(a.Codec, b.Codec),
		cmp.Compare(a.Bitrate, b.Bitrate),
		cmp.Compare(a.BitMode, b.BitMode),
		cmp.Compare(a.Channels, b.Channels),
	)
}

func compareSub(a, b SubTrack) int {
	return cmp.Or(
		cmp.Compare(a.Language, b.Language),
		cmp.Compare(a.Codec, b.Codec),
	)
}
