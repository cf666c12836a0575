package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mediatable/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config backed by a unique temp directory.
// It applies any provided options in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithThreads sets the extraction pool size on the test config.
func WithThreads(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Inventory.Threads = n
	}
}

// WithOutputFormat sets the table style on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithLogLevel sets the stderr log level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WithStubbedMediainfo writes a mediainfo stand-in that prints the fixture
// registered for each file's base name and points the config at it. Files
// without a fixture make the stub exit 1 with no output.
func WithStubbedMediainfo(fixtures map[string]string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Mediainfo.Binary = StubMediainfo(b.t, filepath.Join(b.baseDir, "bin"), fixtures)
	}
}

// StubMediainfo writes the mediainfo stand-in into binDir and returns its path.
func StubMediainfo(t testing.TB, binDir string, fixtures map[string]string) string {
	t.Helper()

	fixtureDir := filepath.Join(binDir, "fixtures")
	if err := os.MkdirAll(fixtureDir, 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	for name, body := range fixtures {
		if err := os.WriteFile(filepath.Join(fixtureDir, name+".json"), []byte(body), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}

	script := "#!/bin/sh\n" +
		"if [ \"$1\" = \"--Version\" ]; then\n" +
		"  echo 'MediaInfo Command line,'\n" +
		"  echo 'MediaInfoLib - v24.06'\n" +
		"  exit 0\n" +
		"fi\n" +
		"fixture=\"" + fixtureDir + "/$(basename \"$2\").json\"\n" +
		"if [ ! -f \"$fixture\" ]; then\n" +
		"  echo \"cannot open $2\" >&2\n" +
		"  exit 1\n" +
		"fi\n" +
		"cat \"$fixture\"\n"

	target := filepath.Join(binDir, "mediainfo")
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub mediainfo: %v", err)
	}
	return target
}

// WriteConfig encodes cfg as TOML into a fresh temp directory and returns the
// file path, ready to pass to -c.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "mediatable.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
