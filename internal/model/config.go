package model

import "time"

// Config is the full configuration for the extraction pipeline
type Config struct {
	Extract     ExtractConfig     `yaml:"extract"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// ExtractConfig controls parsing behavior
type ExtractConfig struct {
	Filter   FilterMode `yaml:"filter"`    // "all" or "weapon-points"
	MaxBytes int64      `yaml:"max_bytes"` // Max document bytes to read
}

// CacheConfig controls report caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Disk cache directory ("" = memory only)
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Concurrent files in batch mode
}

// OutputConfig controls report and scene output
type OutputConfig struct {
	Verbose         bool   `yaml:"verbose"`
	SceneCollection string `yaml:"scene_collection"` // Collection points are placed into
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			Filter:   FilterAll,
			MaxBytes: 16 << 20, // vmdl files are single-model metadata, 16MB is generous
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:         false,
			SceneCollection: "VMDL_Attachments",
		},
	}
}
