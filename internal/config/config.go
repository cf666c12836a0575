package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Scan contains configuration for candidate file discovery.
type Scan struct {
	Extensions     []string `toml:"extensions"`
	RecursiveDepth int      `toml:"recursive_depth"`
}

// Inventory contains configuration for the extraction pool and table layout.
type Inventory struct {
	Threads     int    `toml:"threads"`
	VideoTracks int    `toml:"video_tracks"`
	AudioTracks int    `toml:"audio_tracks"`
	Sort        string `toml:"sort"`
}

// Mediainfo contains configuration for the metadata extraction tool.
type Mediainfo struct {
	Binary         string `toml:"binary"`
	TimeoutSeconds int    `toml:"timeout_seconds"` // 0 disables the timeout
}

// Output contains configuration for the rendered result.
type Output struct {
	Format string `toml:"format"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for mediatable.
//
// Configuration sections by subsystem:
//   - Scan: extensions and the --recursive depth
//   - Inventory: worker count, track columns, and ordering
//   - Mediainfo: extraction binary and per-file timeout
//   - Output: table style
//   - Logging: log format and level
type Config struct {
	Scan      Scan      `toml:"scan"`
	Inventory Inventory `toml:"inventory"`
	Mediainfo Mediainfo `toml:"mediainfo"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
}

const (
	defaultConfigPath = "~/.config/mediatable/config.toml"
	projectConfigName = "mediatable.toml"
)

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults are returned and exists reports false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := locate(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// decodeFile overlays the TOML file at path onto cfg. Unknown keys are errors
// so a typo never silently falls back to a default.
func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(cfg)
	var strict *toml.StrictMissingError
	switch {
	case errors.As(err, &strict):
		return fmt.Errorf("parse config: %s", strict.String())
	case err != nil:
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// locate picks the config file to read. An explicit path always wins, even
// when it does not exist; otherwise the user config is tried first and then
// mediatable.toml in the working directory.
func locate(explicit string) (string, bool, error) {
	if explicit != "" {
		path, err := expandPath(explicit)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return path, false, nil
		case err != nil:
			return "", false, fmt.Errorf("stat config: %w", err)
		case info.IsDir():
			return "", false, fmt.Errorf("config path %s is a directory", path)
		}
		return path, true, nil
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

// MediainfoBinary returns the mediainfo executable to launch.
func (c *Config) MediainfoBinary() string {
	if binary := strings.TrimSpace(c.Mediainfo.Binary); binary != "" {
		return binary
	}
	return defaultMediainfoBinary
}

// MediainfoTimeout returns the per-file extraction timeout; zero means none.
func (c *Config) MediainfoTimeout() time.Duration {
	if c.Mediainfo.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Mediainfo.TimeoutSeconds) * time.Second
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	return absolute, nil
}

// ExpandPath resolves a leading ~ to the home directory and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration text.
func SampleConfig() string {
	return sampleConfig
}
