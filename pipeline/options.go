// Package pipeline implements the transactional save protocol: an optional
// pre-write backup snapshot, optional pre-write validation, temp-file
// write with fsync, optional post-write verification, and an atomic
// rename into place with rollback on failure.
package pipeline

import (
	"github.com/tavernkeep/savecore/compress"
	"github.com/tavernkeep/savecore/saveconf"
)

// Options configures one transactional Save call.
type Options struct {
	CompressionLevel   compress.Level
	ValidateBeforeSave bool
	VerifyAfterSave    bool
	CreateBackup       bool
	Config             saveconf.Config
}

func (o Options) configOrDefault() saveconf.Config {
	if o.Config.MaxStringBytes == 0 && o.Config.MaxSegmentBytes == 0 && len(o.Config.NavalExpansionIDs) == 0 {
		return saveconf.Default()
	}
	return o.Config
}
