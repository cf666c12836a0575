package inventory

import (
	"golang.org/x/text/unicode/norm"

	"mediatable/internal/media/mediainfo"
)

// MediaRecord summarizes one media file. Track slices keep the order in
// which MediaInfo reported them. Path is informational and never rendered in
// the plain table.
type MediaRecord struct {
	Path      string       `json:"path,omitempty"`
	Filename  string       `json:"filename"`
	Container string       `json:"container"`
	Video     []VideoTrack `json:"video"`
	Audio     []AudioTrack `json:"audio"`
	Subs      []SubTrack   `json:"subtitles"`
}

// Build groups the tracks of one document into a record. ok is false when the
// document has no General track; such files are not media we report on and
// the caller should drop them quietly. warnings lists recoverable field
// problems encountered while normalizing tracks.
func Build(filename string, doc mediainfo.Document) (record MediaRecord, ok bool, warnings []error) {
	var container *string
	record = MediaRecord{
		Filename: norm.NFC.String(filename),
		Video:    []VideoTrack{},
		Audio:    []AudioTrack{},
		Subs:     []SubTrack{},
	}

	for _, track := range doc.Tracks {
		switch track.Type() {
		case mediainfo.TypeGeneral:
			if container != nil {
				continue
			}
			format, found := track.Field("Format")
			if !found {
				warnings = append(warnings, fieldError(ErrMissingField, mediainfo.TypeGeneral, "Format", ""))
			}
			container = &format
		case mediainfo.TypeVideo:
			video, err := NewVideoTrack(track)
			if err != nil {
				warnings = append(warnings, err)
			}
			record.Video = append(record.Video, video)
		case mediainfo.TypeAudio:
			audio, err := NewAudioTrack(track)
			if err != nil {
				warnings = append(warnings, err)
			}
			record.Audio = append(record.Audio, audio)
		case mediainfo.TypeText:
			record.Subs = append(record.Subs, NewSubTrack(track))
		}
	}

	if container == nil {
		return MediaRecord{}, false, nil
	}
	record.Container = *container
	return record, true, warnings
}

// Parsed is the outcome of decoding one payload. Record is only meaningful
// when HasContainer is true.
type Parsed struct {
	Record       MediaRecord
	HasContainer bool
	Warnings     []error
}

// Parse decodes a raw MediaInfo payload and builds its record. Malformed
// payloads fail with an error wrapping ErrExtractionParse.
func Parse(filename string, data []byte) (Parsed, error) {
	doc, err := mediainfo.Parse(data)
	if err != nil {
		return Parsed{}, Wrap(ErrExtractionParse, filename, "decode metadata", err)
	}
	record, ok, warnings := Build(filename, doc)
	return Parsed{Record: record, HasContainer: ok, Warnings: warnings}, nil
}
