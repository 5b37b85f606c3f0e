package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	kgzip "github.com/klauspost/compress/gzip"

	"github.com/tavernkeep/savecore/saveconf"
	"github.com/tavernkeep/savecore/savelog"
)

// snapshotBackup gzip-copies the file at path into a sibling backup
// directory, stamped with the current UTC time. It never returns an error
// to its caller: a failed snapshot is recorded as a warning and the save
// proceeds, per the pipeline's "never blocks the write" contract.
func snapshotBackup(ctx context.Context, path string, cfg saveconf.Config, now time.Time) (warning string) {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("backup: could not open %q for snapshot: %v", path, err)
	}
	defer src.Close()

	dir := filepath.Join(filepath.Dir(path), cfg.BackupDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Sprintf("backup: could not create backup directory %q: %v", dir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := fmt.Sprintf("%s_%s.sav.gz", stem, now.UTC().Format("20060102T150405Z"))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Sprintf("backup: could not create snapshot %q: %v", dstPath, err)
	}
	defer dst.Close()

	gz := kgzip.NewWriter(dst)
	if _, err := io.Copy(gz, src); err != nil {
		gz.Close()
		return fmt.Sprintf("backup: snapshot copy failed: %v", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Sprintf("backup: snapshot flush failed: %v", err)
	}

	savelog.Info("save snapshotted", savelog.F("path", path), savelog.F("backup", dstPath))
	return ""
}
