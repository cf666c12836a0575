package testsupport

import (
	"encoding/json"
	"testing"
)

// Track is one mediainfo track in a fixture document.
type Track map[string]any

// General returns a container track with the given format.
func General(format string) Track {
	return Track{"@type": "General", "Format": format}
}

// Video returns a video track with the fields the inventory reads.
func Video(codecID, bitrate, height, scanType string) Track {
	return Track{
		"@type":    "Video",
		"CodecID":  codecID,
		"BitRate":  bitrate,
		"Height":   height,
		"ScanType": scanType,
	}
}

// Audio returns an audio track identified by codec id.
func Audio(codecID, bitrate, bitMode, channels string) Track {
	return Track{
		"@type":        "Audio",
		"CodecID":      codecID,
		"BitRate":      bitrate,
		"BitRate_Mode": bitMode,
		"Channels":     channels,
	}
}

// Document renders mediainfo --Output=JSON text for the tracks.
func Document(t testing.TB, ref string, tracks ...Track) string {
	t.Helper()

	payload := map[string]any{
		"media": map[string]any{
			"@ref":  ref,
			"track": tracks,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(data)
}
