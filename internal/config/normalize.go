package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeScan()
	c.normalizeInventory()
	c.normalizeMediainfo()
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeScan() {
	exts := make([]string, 0, len(c.Scan.Extensions))
	seen := make(map[string]struct{}, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultExtensions...)
	}
	c.Scan.Extensions = exts
	if c.Scan.RecursiveDepth == 0 {
		c.Scan.RecursiveDepth = defaultRecursiveDepth
	}
}

func (c *Config) normalizeInventory() {
	if c.Inventory.Threads == 0 {
		c.Inventory.Threads = defaultThreads
	}
	c.Inventory.Sort = strings.ToLower(strings.TrimSpace(c.Inventory.Sort))
	if c.Inventory.Sort == "" {
		c.Inventory.Sort = defaultSort
	}
}

func (c *Config) normalizeMediainfo() {
	if value, ok := os.LookupEnv("MEDIAINFO_BINARY"); ok && strings.TrimSpace(value) != "" {
		c.Mediainfo.Binary = value
	}
	c.Mediainfo.Binary = strings.TrimSpace(c.Mediainfo.Binary)
	if c.Mediainfo.Binary == "" {
		c.Mediainfo.Binary = defaultMediainfoBinary
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console", "text", "pretty":
		c.Logging.Format = defaultLogFormat
	default:
		c.Logging.Format = format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
