package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tavernkeep/savecore/codec"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/saveevents"
	"github.com/tavernkeep/savecore/savelog"
	"github.com/tavernkeep/savecore/validate"
)

// Save runs the transactional save protocol against path: optional backup
// snapshot, optional pre-write validation, metadata bookkeeping, a
// temp-file write with fsync, optional post-write verification, and an
// atomic rename into place with rollback on failure.
//
// now is the caller-supplied current time; the pipeline never calls
// time.Now() itself so tests can drive play_time/last_modified accounting
// deterministically.
func Save(ctx context.Context, save *domain.Save, path string, opts Options, now time.Time, lastModified time.Time) ([]string, error) {
	var warnings []string
	conf := opts.configOrDefault()

	saveevents.Default.EmitSaveSaving(saveevents.SaveSaving{Path: path})

	if opts.CreateBackup {
		if _, err := os.Stat(path); err == nil {
			if warning := snapshotBackup(ctx, path, conf, now); warning != "" {
				warnings = append(warnings, warning)
			}
		}
	}

	if opts.ValidateBeforeSave {
		report := validate.Validate(save, validate.Normal)
		if !report.IsValid() {
			return warnings, &ValidationFailedError{Issues: report.Errors}
		}
	}

	if !lastModified.IsZero() {
		save.Metadata.PlayTime += int64(now.Sub(lastModified).Seconds())
	}

	tmpPath := path + ".tmp"
	writeOpts := codec.WriteOptions{CompressionLevel: opts.CompressionLevel, Config: conf}
	if err := writeWithFsync(ctx, save, tmpPath, writeOpts); err != nil {
		return warnings, fmt.Errorf("pipeline: write failed: %w", err)
	}

	if opts.VerifyAfterSave {
		if err := VerifyIntegrity(tmpPath); err != nil {
			os.Remove(tmpPath)
			return warnings, &VerificationFailedError{Inner: err}
		}
	}

	if err := atomicRename(tmpPath, path); err != nil {
		return warnings, err
	}

	savelog.Info("save written", savelog.F("path", path))
	saveevents.Default.EmitSaveSaved(saveevents.SaveSaved{Path: path})
	return warnings, nil
}

// writeWithFsync delegates to codec.Write and then fsyncs the file, since
// codec.Write itself closes the file handle without forcing a flush to
// stable storage.
func writeWithFsync(ctx context.Context, save *domain.Save, path string, opts codec.WriteOptions) error {
	if err := codec.Write(ctx, save, path, opts); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

// atomicRename swaps tmpPath into place at destPath. If destPath already
// exists it is first renamed to destPath+".bak"; on any failure after that
// point the backup is restored and AtomicRenameFailedError is returned.
func atomicRename(tmpPath, destPath string) error {
	bakPath := destPath + ".bak"

	_, destExists := os.Stat(destPath)
	hadDest := destExists == nil

	if hadDest {
		if err := os.Rename(destPath, bakPath); err != nil {
			return &AtomicRenameFailedError{Inner: err, Restored: true}
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		if hadDest {
			restoreErr := os.Rename(bakPath, destPath)
			return &AtomicRenameFailedError{Inner: err, Restored: restoreErr == nil}
		}
		return &AtomicRenameFailedError{Inner: err, Restored: false}
	}

	if hadDest {
		os.Remove(bakPath)
	}
	return nil
}
