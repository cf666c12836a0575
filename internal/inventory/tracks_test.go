package inventory

import (
	"encoding/json"
	"errors"
	"testing"

	"mediatable/internal/media/mediainfo"
)

func TestNewVideoTrackCodecAliases(t *testing.T) {
	tests := []struct {
		codecID string
		want    string
	}{
		{"V_MPEGH/ISO/HEVC", "HEVC"},
		{"V_MPEG4/ISO/AVC", "h264"},
		{"avc1", "h264"},
		{"V_XYZ", "V_XYZ"},
	}
	for _, tt := range tests {
		track, err := NewVideoTrack(mediainfo.Track{"CodecID": tt.codecID})
		if err != nil {
			t.Fatalf("NewVideoTrack(%q) returned error: %v", tt.codecID, err)
		}
		if track.Codec != tt.want {
			t.Errorf("codec %q: got %q want %q", tt.codecID, track.Codec, tt.want)
		}
	}
}

func TestNewVideoTrackFields(t *testing.T) {
	track, err := NewVideoTrack(mediainfo.Track{
		"CodecID":  "V_MPEG4/ISO/AVC",
		"BitRate":  json.Number("8500000"),
		"Height":   "1080",
		"ScanType": "Interlaced",
	})
	if err != nil {
		t.Fatalf("NewVideoTrack returned error: %v", err)
	}
	want := VideoTrack{Codec: "h264", Bitrate: "8.500 mb/s", Height: "1080", ScanType: "i"}
	if track != want {
		t.Fatalf("got %+v want %+v", track, want)
	}
}

func TestNewVideoTrackScanType(t *testing.T) {
	tests := map[string]string{
		"Progressive": "p",
		"Interlaced":  "i",
		"MBAFF":       "",
	}
	for scan, want := range tests {
		track, _ := NewVideoTrack(mediainfo.Track{"CodecID": "avc1", "ScanType": scan})
		if track.ScanType != want {
			t.Errorf("scan %q: got %q want %q", scan, track.ScanType, want)
		}
	}
	track, _ := NewVideoTrack(mediainfo.Track{"CodecID": "avc1"})
	if track.ScanType != "" {
		t.Errorf("absent scan type: got %q", track.ScanType)
	}
}

func TestNewVideoTrackMissingCodec(t *testing.T) {
	track, err := NewVideoTrack(mediainfo.Track{"Height": "720"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if track.Codec != "" || track.Height != "720" {
		t.Fatalf("expected fallback track, got %+v", track)
	}
}

func TestNewAudioTrackCodec(t *testing.T) {
	tests := []struct {
		name  string
		track mediainfo.Track
		want  string
	}{
		{"dts-hd", mediainfo.Track{"Format_Commercial_IfAny": "DTS-HD Master Audio", "CodecID": "A_DTS"}, "DTSHD-MA"},
		{"ddp atmos", mediainfo.Track{"Format_Commercial_IfAny": "Dolby Digital Plus with Dolby Atmos"}, "DDP + Atmos"},
		{"truehd atmos", mediainfo.Track{"Format_Commercial_IfAny": "Dolby TrueHD with Dolby Atmos"}, "TrueHD + Atmos"},
		{"commercial passthrough", mediainfo.Track{"Format_Commercial_IfAny": "Dolby Digital", "CodecID": "A_AC3"}, "Dolby Digital"},
		{"mp3 id", mediainfo.Track{"CodecID": "55"}, "MP3"},
		{"strip prefix", mediainfo.Track{"CodecID": "A_AAC-2"}, "AAC-2"},
		{"no prefix", mediainfo.Track{"CodecID": "mp4a-40-2"}, "mp4a-40-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.track["Channels"] = "2"
			track, err := NewAudioTrack(tt.track)
			if err != nil {
				t.Fatalf("NewAudioTrack returned error: %v", err)
			}
			if track.Codec != tt.want {
				t.Fatalf("got %q want %q", track.Codec, tt.want)
			}
		})
	}
}

func TestNewAudioTrackChannels(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{"8", "7.1"},
		{"6", "5.1"},
		{json.Number("2"), "Stereo"},
		{"1", "Mono"},
		{"3", "3"},
	}
	for _, tt := range tests {
		track, err := NewAudioTrack(mediainfo.Track{"CodecID": "A_AAC", "Channels": tt.raw})
		if err != nil {
			t.Fatalf("channels %v: unexpected error: %v", tt.raw, err)
		}
		if track.Channels != tt.want {
			t.Errorf("channels %v: got %q want %q", tt.raw, track.Channels, tt.want)
		}
	}
}

func TestNewAudioTrackChannelFallbacks(t *testing.T) {
	track, err := NewAudioTrack(mediainfo.Track{"CodecID": "A_AAC", "Channels": "8 / 6"})
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if track.Channels != "8 / 6" {
		t.Fatalf("expected raw channel text, got %q", track.Channels)
	}

	track, err = NewAudioTrack(mediainfo.Track{"Channels": "2"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for absent codec, got %v", err)
	}
	if track.Codec != "" || track.Channels != "Stereo" {
		t.Fatalf("unexpected fallback track: %+v", track)
	}
}

func TestNewAudioTrackFields(t *testing.T) {
	track, err := NewAudioTrack(mediainfo.Track{
		"CodecID":      "A_AC3",
		"BitRate":      "640000",
		"BitRate_Mode": "CBR",
		"Channels":     "6",
	})
	if err != nil {
		t.Fatalf("NewAudioTrack returned error: %v", err)
	}
	want := AudioTrack{Codec: "AC3", Bitrate: "640.0 kb/s", BitMode: "CBR", Channels: "5.1"}
	if track != want {
		t.Fatalf("got %+v want %+v", track, want)
	}
}

func TestNewSubTrack(t *testing.T) {
	sub := NewSubTrack(mediainfo.Track{"Language": "en", "Format": "PGS"})
	if sub != (SubTrack{Language: "en", Codec: "PGS"}) {
		t.Fatalf("unexpected sub track: %+v", sub)
	}
}
