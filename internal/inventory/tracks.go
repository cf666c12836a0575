package inventory

import (
	"errors"
	"strconv"
	"strings"

	"mediatable/internal/media/mediainfo"
)

// VideoTrack is the display form of one video stream.
type VideoTrack struct {
	Codec    string `json:"codec"`
	Bitrate  string `json:"bitrate"`
	Height   string `json:"height"`
	ScanType string `json:"scan_type"`
}

// AudioTrack is the display form of one audio stream.
type AudioTrack struct {
	Codec    string `json:"codec"`
	Bitrate  string `json:"bitrate"`
	BitMode  string `json:"bit_mode"`
	Channels string `json:"channels"`
}

// SubTrack is the display form of one subtitle stream. The table renderer
// does not show subtitles yet.
type SubTrack struct {
	Language string `json:"language"`
	Codec    string `json:"codec"`
}

var videoCodecAliases = map[string]string{
	"V_MPEGH/ISO/HEVC": "HEVC",
	"V_MPEG4/ISO/AVC":  "h264",
	"avc1":             "h264",
}

var audioCommercialAliases = map[string]string{
	"DTS-HD Master Audio":                 "DTSHD-MA",
	"Dolby Digital Plus with Dolby Atmos": "DDP + Atmos",
	"Dolby TrueHD with Dolby Atmos":       "TrueHD + Atmos",
}

var channelLabels = map[int]string{
	8: "7.1",
	6: "5.1",
	2: "Stereo",
	1: "Mono",
}

// NewVideoTrack normalizes a MediaInfo video track. The returned track is
// always usable; a non-nil error lists the fields that needed a fallback.
func NewVideoTrack(track mediainfo.Track) (VideoTrack, error) {
	var errs []error

	codec, ok := track.Field("CodecID")
	if !ok {
		errs = append(errs, fieldError(ErrMissingField, mediainfo.TypeVideo, "CodecID", ""))
	} else if alias, found := videoCodecAliases[codec]; found {
		codec = alias
	}

	bitrate, _ := track.Field("BitRate")
	height, _ := track.Field("Height")
	scan, _ := track.Field("ScanType")

	return VideoTrack{
		Codec:    codec,
		Bitrate:  FormatBitrate(bitrate),
		Height:   height,
		ScanType: scanTypeLabel(scan),
	}, errors.Join(errs...)
}

// NewAudioTrack normalizes a MediaInfo audio track. The returned track is
// always usable; a non-nil error lists the fields that needed a fallback.
func NewAudioTrack(track mediainfo.Track) (AudioTrack, error) {
	var errs []error

	codec, err := audioCodec(track)
	if err != nil {
		errs = append(errs, err)
	}
	channels, err := channelLabel(track)
	if err != nil {
		errs = append(errs, err)
	}

	bitrate, _ := track.Field("BitRate")
	mode, _ := track.Field("BitRate_Mode")

	return AudioTrack{
		Codec:    codec,
		Bitrate:  FormatBitrate(bitrate),
		BitMode:  mode,
		Channels: channels,
	}, errors.Join(errs...)
}

// NewSubTrack copies the language and format of a MediaInfo text track.
func NewSubTrack(track mediainfo.Track) SubTrack {
	language, _ := track.Field("Language")
	codec, _ := track.Field("Format")
	return SubTrack{Language: language, Codec: codec}
}

func scanTypeLabel(scan string) string {
	switch scan {
	case "Progressive":
		return "p"
	case "Interlaced":
		return "i"
	default:
		return ""
	}
}

// audioCodec prefers the commercial name and falls back to the codec ID.
func audioCodec(track mediainfo.Track) (string, error) {
	if name, ok := track.Field("Format_Commercial_IfAny"); ok {
		if alias, found := audioCommercialAliases[name]; found {
			return alias, nil
		}
		return name, nil
	}

	id, ok := track.Field("CodecID")
	if !ok {
		return "", fieldError(ErrMissingField, mediainfo.TypeAudio, "CodecID", "")
	}
	if id == "55" {
		return "MP3", nil
	}
	return strings.TrimPrefix(id, "A_"), nil
}

func channelLabel(track mediainfo.Track) (string, error) {
	raw, ok := track.Field("Channels")
	if !ok {
		return "", fieldError(ErrMissingField, mediainfo.TypeAudio, "Channels", "")
	}
	count, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return raw, fieldError(ErrInvalidNumber, mediainfo.TypeAudio, "Channels", raw)
	}
	if label, found := channelLabels[int(count)]; found {
		return label, nil
	}
	return raw, nil
}
