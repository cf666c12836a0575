package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"mediatable/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MEDIAINFO_BINARY", "")
	t.Chdir(t.TempDir())
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "mediatable", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if !reflect.DeepEqual(cfg.Scan.Extensions, []string{"mkv", "avi", "mpg", "mp4"}) {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
	if cfg.Scan.RecursiveDepth != 10 {
		t.Fatalf("unexpected recursive depth: %d", cfg.Scan.RecursiveDepth)
	}
	if cfg.Inventory.Threads != 1 || cfg.Inventory.VideoTracks != 1 || cfg.Inventory.AudioTracks != 1 {
		t.Fatalf("unexpected inventory defaults: %+v", cfg.Inventory)
	}
	if cfg.Inventory.Sort != "structural" {
		t.Fatalf("unexpected sort: %q", cfg.Inventory.Sort)
	}
	if cfg.MediainfoBinary() != "mediainfo" {
		t.Fatalf("unexpected binary: %q", cfg.MediainfoBinary())
	}
	if cfg.MediainfoTimeout() != 0 {
		t.Fatalf("expected no timeout, got %s", cfg.MediainfoTimeout())
	}
	if cfg.Output.Format != config.FormatPlain {
		t.Fatalf("unexpected format: %q", cfg.Output.Format)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadPrefersProjectFileWhenHomeConfigMissing(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("mediatable.toml", []byte("[inventory]\nthreads = 3\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "mediatable.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Inventory.Threads != 3 {
		t.Fatalf("expected threads from project config, got %d", cfg.Inventory.Threads)
	}
}

func TestLoadCustomPathOverridesValues(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[scan]
extensions = [".mkv", "webm", "mkv", " "]
recursive_depth = 4

[inventory]
threads = 8
video_tracks = 2
audio_tracks = 3
sort = "Name"

[mediainfo]
binary = "/opt/mediainfo/bin/mediainfo"
timeout_seconds = 30

[output]
format = "BOX"

[logging]
format = "pretty"
level = "DEBUG"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if !reflect.DeepEqual(cfg.Scan.Extensions, []string{"mkv", "webm"}) {
		t.Fatalf("extensions not normalized: %v", cfg.Scan.Extensions)
	}
	if cfg.Scan.RecursiveDepth != 4 {
		t.Fatalf("unexpected depth: %d", cfg.Scan.RecursiveDepth)
	}
	if cfg.Inventory.Threads != 8 || cfg.Inventory.VideoTracks != 2 || cfg.Inventory.AudioTracks != 3 {
		t.Fatalf("unexpected inventory: %+v", cfg.Inventory)
	}
	if cfg.Inventory.Sort != "name" {
		t.Fatalf("sort not lowercased: %q", cfg.Inventory.Sort)
	}
	if cfg.MediainfoBinary() != "/opt/mediainfo/bin/mediainfo" {
		t.Fatalf("unexpected binary: %q", cfg.MediainfoBinary())
	}
	if cfg.MediainfoTimeout() != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.MediainfoTimeout())
	}
	if cfg.Output.Format != config.FormatBox {
		t.Fatalf("unexpected format: %q", cfg.Output.Format)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Inventory.Threads != 1 {
		t.Fatalf("expected default threads, got %d", cfg.Inventory.Threads)
	}
}

func TestMediainfoBinaryEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MEDIAINFO_BINARY", "/usr/local/bin/mediainfo")
	path := writeConfig(t, "[mediainfo]\nbinary = \"/opt/mediainfo\"\n")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MediainfoBinary() != "/usr/local/bin/mediainfo" {
		t.Fatalf("expected env override, got %q", cfg.MediainfoBinary())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"threads", "[inventory]\nthreads = -1\n", "inventory.threads"},
		{"video tracks", "[inventory]\nvideo_tracks = -2\n", "inventory.video_tracks"},
		{"audio tracks", "[inventory]\naudio_tracks = -2\n", "inventory.audio_tracks"},
		{"sort", "[inventory]\nsort = \"size\"\n", "inventory.sort"},
		{"depth", "[scan]\nrecursive_depth = -3\n", "scan.recursive_depth"},
		{"timeout", "[mediainfo]\ntimeout_seconds = -1\n", "mediainfo.timeout_seconds"},
		{"format", "[output]\nformat = \"html\"\n", "output.format"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"log level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"unknown key", "[inventory]\nworkers = 2\n", "parse config"},
		{"syntax", "[inventory\n", "parse config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			_, _, _, err := config.Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	var cfg config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("sample config drifted from defaults:\n got %+v\nwant %+v", cfg, config.Default())
	}
}

func TestCreateSampleWritesLoadableFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("Load sample: exists=%v err=%v", exists, err)
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	got, err := config.ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "media") {
		t.Fatalf("ExpandPath = %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}

func TestLoadRejectsDirectoryPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if _, _, _, err := config.Load(dir); err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
}
