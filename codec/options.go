package codec

import (
	"github.com/tavernkeep/savecore/compress"
	"github.com/tavernkeep/savecore/saveconf"
)

// LoadOptions controls a full Load call.
type LoadOptions struct {
	// MetadataOnly returns a Save with header, modules, and metadata
	// populated but every entity collection empty; the body is never
	// decompressed.
	MetadataOnly bool
	// KeepRawBody retains the decompressed body bytes on the returned Save
	// for audit/debugging.
	KeepRawBody bool
	// Permissive downgrades recoverable errors (bad magic, truncated
	// trailing segments) to warnings instead of failing the load.
	Permissive bool
	// SkipValidation skips running the validator after a successful load.
	// Load itself never runs the validator today; this flag exists so
	// callers (and the pipeline) have one option name across load/save.
	SkipValidation bool
	// Config supplies allocation bounds and the naval-expansion identifier
	// list. The zero value is replaced with saveconf.Default().
	Config saveconf.Config
}

// WriteOptions controls a full Write call.
type WriteOptions struct {
	// CompressionLevel selects the ZLIB level for the body. Zero value
	// (compress.NoCompression) is a valid, deliberate choice. Write uses this
	// field as given; it does not read saveconf.Config.DefaultCompressionLevel.
	CompressionLevel compress.Level
	Config           saveconf.Config
}

func (o LoadOptions) configOrDefault() saveconf.Config {
	if o.Config.MaxStringBytes == 0 && o.Config.MaxSegmentBytes == 0 && len(o.Config.NavalExpansionIDs) == 0 {
		return saveconf.Default()
	}
	return o.Config
}

func (o WriteOptions) configOrDefault() saveconf.Config {
	if o.Config.MaxStringBytes == 0 && o.Config.MaxSegmentBytes == 0 && len(o.Config.NavalExpansionIDs) == 0 {
		return saveconf.Default()
	}
	return o.Config
}
