package config

import (
	"mediatable/internal/media/mediainfo"
	"mediatable/internal/scan"
)

const (
	defaultRecursiveDepth  = scan.RecursiveDepth
	defaultThreads         = 1
	defaultVideoTracks     = 1
	defaultAudioTracks     = 1
	defaultSort            = "structural"
	defaultMediainfoBinary = mediainfo.DefaultBinary
	defaultOutputFormat    = "plain"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
)

// Output formats understood by the command line.
const (
	FormatPlain = "plain"
	FormatBox   = "box"
	FormatJSON  = "json"
)

var defaultExtensions = scan.DefaultExtensions

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions:     append([]string(nil), defaultExtensions...),
			RecursiveDepth: defaultRecursiveDepth,
		},
		Inventory: Inventory{
			Threads:     defaultThreads,
			VideoTracks: defaultVideoTracks,
			AudioTracks: defaultAudioTracks,
			Sort:        defaultSort,
		},
		Mediainfo: Mediainfo{
			Binary: defaultMediainfoBinary,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
