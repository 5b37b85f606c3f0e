// Package saveconf holds the engine-wide tunables the codec, compression,
// and pipeline packages are parameterized by: allocation caps, the backup
// directory name, the naval-expansion identifier list, and the default
// compression level.
package saveconf

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tavernkeep/savecore/compress"
)

// Config holds engine-wide tunables.
type Config struct {
	MaxStringBytes          int      `toml:"max_string_bytes"`
	MaxSegmentBytes         int      `toml:"max_segment_bytes"`
	MaxDecompressBytes      int      `toml:"max_decompress_bytes"`
	BackupDirName           string   `toml:"backup_dir_name"`
	NavalExpansionIDs       []string `toml:"naval_expansion_ids"`
	DefaultCompressionLevel int      `toml:"default_compression_level"`
}

// Default returns the engine's zero-config defaults.
func Default() Config {
	return Config{
		MaxStringBytes:          16 * 1024 * 1024,
		MaxSegmentBytes:         64 * 1024 * 1024,
		MaxDecompressBytes:      compress.DefaultMaxDecompressBytes,
		BackupDirName:           "_SaveEditorBackups",
		NavalExpansionIDs:       []string{"WarSails", "NavalExpansion", "HighSeas"},
		DefaultCompressionLevel: int(compress.Optimal),
	}
}

// Load reads a TOML configuration file, starting from Default() and
// overriding only the fields present in the file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HasNavalExpansion reports whether moduleIDs contains a case-insensitive
// match for any entry in cfg.NavalExpansionIDs.
func (cfg Config) HasNavalExpansion(moduleIDs []string) bool {
	for _, id := range moduleIDs {
		for _, naval := range cfg.NavalExpansionIDs {
			if strings.EqualFold(id, naval) {
				return true
			}
		}
	}
	return false
}
