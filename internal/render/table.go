package render

import (
	"io"
	"strings"

	"mediatable/internal/inventory"
	"mediatable/internal/textutil"
)

// MaxFilename is the longest filename, in scalar values, shown without truncation.
const MaxFilename = 42

const (
	separator   = "|"
	cellSpacing = "  "
	videoCells  = 3
	audioCells  = 4
)

// Columns holds the number of track slots to show per kind. Subs is reserved
// and currently ignored.
type Columns struct {
	Video int
	Audio int
	Subs  int
}

// Clamp limits the requested slots to the most tracks any record has.
func Clamp(records []inventory.MediaRecord, cols Columns) Columns {
	var maxVideo, maxAudio int
	for _, rec := range records {
		maxVideo = max(maxVideo, len(rec.Video))
		maxAudio = max(maxAudio, len(rec.Audio))
	}
	return Columns{
		Video: max(0, min(cols.Video, maxVideo)),
		Audio: max(0, min(cols.Audio, maxAudio)),
	}
}

// Rows builds the cells of every record after clamping cols.
func Rows(records []inventory.MediaRecord, cols Columns) [][]string {
	cols = Clamp(records, cols)
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, row(rec, cols))
	}
	return rows
}

func row(rec inventory.MediaRecord, cols Columns) []string {
	cells := make([]string, 0, 3+cols.Video*videoCells+cols.Audio*audioCells)
	cells = append(cells, textutil.TruncateMiddle(rec.Filename, MaxFilename), separator)
	for i := 0; i < cols.Video; i++ {
		if i < len(rec.Video) {
			v := rec.Video[i]
			cells = append(cells, v.Codec, v.Bitrate, v.Height+v.ScanType)
			continue
		}
		cells = append(cells, "", "", "")
	}
	cells = append(cells, separator)
	for i := 0; i < cols.Audio; i++ {
		if i < len(rec.Audio) {
			a := rec.Audio[i]
			cells = append(cells, a.Codec, a.Bitrate, a.BitMode, a.Channels)
			continue
		}
		cells = append(cells, "", "", "", "")
	}
	return cells
}

// Widths returns the widest cell per column index, in scalar values.
func Widths(rows [][]string) []int {
	var widths []int
	for _, cells := range rows {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], textutil.ScalarCount(cell))
		}
	}
	return widths
}

// Lines renders records in the plain layout, one string per record.
func Lines(records []inventory.MediaRecord, cols Columns) []string {
	rows := Rows(records, cols)
	widths := Widths(rows)
	lines := make([]string, 0, len(rows))
	for _, cells := range rows {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = textutil.PadRight(cell, widths[i])
		}
		lines = append(lines, strings.Join(padded, cellSpacing))
	}
	return lines
}

// Write renders records in the plain layout to w.
func Write(w io.Writer, records []inventory.MediaRecord, cols Columns) error {
	for _, line := range Lines(records, cols) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
