package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/tavernkeep/savecore/codec"
	"github.com/tavernkeep/savecore/saveconf"
)

// Discover scans dir (non-recursively) for files matching ext and returns
// their SaveInfo, newest LastModified first. A file that fails to parse as
// a save envelope is skipped rather than aborting the whole scan.
func Discover(ctx context.Context, dir string, ext string, conf ...saveconf.Config) ([]*codec.SaveInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var infos []*codec.SaveInfo
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return infos, err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := codec.LoadInfo(ctx, path, conf...)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].LastModified.After(infos[j].LastModified)
	})
	return infos, nil
}
