package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediatable/internal/inventory"
)

// BoxOptions controls the box layout.
type BoxOptions struct {
	Color bool
}

// Headers returns the header labels matching the cells produced by Rows.
func Headers(cols Columns) []string {
	titleCaser := cases.Title(language.English)
	headers := []string{titleCaser.String("file"), separator}
	for i := 1; i <= cols.Video; i++ {
		for _, label := range []string{"codec", "bitrate", "height"} {
			headers = append(headers, titleCaser.String(fmt.Sprintf("video %d %s", i, label)))
		}
	}
	headers = append(headers, separator)
	for i := 1; i <= cols.Audio; i++ {
		for _, label := range []string{"codec", "bitrate", "mode", "channels"} {
			headers = append(headers, titleCaser.String(fmt.Sprintf("audio %d %s", i, label)))
		}
	}
	return headers
}

// RenderBox renders records as a rounded go-pretty table with a header row.
// The separator cells of the plain layout are dropped.
func RenderBox(records []inventory.MediaRecord, cols Columns, opts BoxOptions) string {
	if len(records) == 0 {
		return ""
	}
	cols = Clamp(records, cols)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	if opts.Color {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}

	headers := dropSeparators(Headers(cols), cols)
	tw.AppendHeader(toTableRow(headers))
	for _, rec := range records {
		tw.AppendRow(toTableRow(dropSeparators(row(rec, cols), cols)))
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// WriteBox writes RenderBox output followed by a newline.
func WriteBox(w io.Writer, records []inventory.MediaRecord, cols Columns, opts BoxOptions) error {
	out := RenderBox(records, cols, opts)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// dropSeparators removes the two separator cells: one after the filename and
// one after the video slots.
func dropSeparators(cells []string, cols Columns) []string {
	audioSep := 2 + cols.Video*videoCells
	out := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i == 1 || i == audioSep {
			continue
		}
		out = append(out, cell)
	}
	return out
}

func toTableRow(cells []string) table.Row {
	r := make(table.Row, len(cells))
	for i, cell := range cells {
		r[i] = cell
	}
	return r
}
