package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/savecore/codec"
	"github.com/tavernkeep/savecore/compress"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
	"github.com/tavernkeep/savecore/pipeline"
)

func buildSave() *domain.Save {
	save := domain.NewSave()
	save.Header = domain.Header{HeaderVersion: 7, GameVersion: "v1.2.10"}
	save.Metadata = domain.Metadata{CharacterName: "Ira", PlayTime: 100}
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Ira")
	h.Level = 10
	save.Heroes.Add(h)
	return save
}

func TestSaveWritesFileAndUpdatesPlayTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	save := buildSave()
	ctx := context.Background()

	lastModified := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	now := lastModified.Add(10 * time.Minute)

	warnings, err := pipeline.Save(ctx, save, path, pipeline.Options{
		CompressionLevel: compress.Optimal,
	}, now, lastModified)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, int64(700), save.Metadata.PlayTime)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, _, err := codec.Load(ctx, path, codec.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Ira", loaded.Metadata.CharacterName)
}

func TestSaveCreatesBackupSnapshotWhenDestinationExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	ctx := context.Background()
	require.NoError(t, codec.Write(ctx, buildSave(), path, codec.WriteOptions{CompressionLevel: compress.Optimal}))

	now := time.Now()
	_, err := pipeline.Save(ctx, buildSave(), path, pipeline.Options{
		CompressionLevel: compress.Optimal,
		CreateBackup:     true,
	}, now, now)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "_SaveEditorBackups"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveAbortsOnValidationError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	save := buildSave()
	save.Heroes.All()[0].Gold = -1

	now := time.Now()
	_, err := pipeline.Save(context.Background(), save, path, pipeline.Options{
		CompressionLevel:   compress.Optimal,
		ValidateBeforeSave: true,
	}, now, now)

	require.Error(t, err)
	var validationErr *pipeline.ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Issues)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveVerifyAfterSaveSucceeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	now := time.Now()
	_, err := pipeline.Save(context.Background(), buildSave(), path, pipeline.Options{
		CompressionLevel: compress.Optimal,
		VerifyAfterSave:  true,
	}, now, now)
	require.NoError(t, err)
	assert.NoError(t, pipeline.VerifyIntegrity(path))
}

func TestVerifyIntegrityRejectsGarbageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.sav")
	require.NoError(t, os.WriteFile(path, []byte("not a save file"), 0o644))
	assert.Error(t, pipeline.VerifyIntegrity(path))
}

func TestChecksumIsStableAndDetectsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	require.NoError(t, codec.Write(context.Background(), buildSave(), path, codec.WriteOptions{CompressionLevel: compress.Optimal}))

	sum1, err := pipeline.Checksum(path)
	require.NoError(t, err)
	sum2, err := pipeline.Checksum(path)
	require.NoError(t, err)
	assert.Equal(t, sum1, sum2)

	require.NoError(t, os.WriteFile(path, []byte("different content"), 0o644))
	sum3, err := pipeline.Checksum(path)
	require.NoError(t, err)
	assert.NotEqual(t, sum1, sum3)
}

func TestDiscoverSortsByModTimeDescending(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	older := filepath.Join(dir, "older.sav")
	newer := filepath.Join(dir, "newer.sav")
	require.NoError(t, codec.Write(ctx, buildSave(), older, codec.WriteOptions{CompressionLevel: compress.Optimal}))
	require.NoError(t, codec.Write(ctx, buildSave(), newer, codec.WriteOptions{CompressionLevel: compress.Optimal}))

	now := time.Now()
	require.NoError(t, os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))

	infos, err := pipeline.Discover(ctx, dir, ".sav")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, newer, infos[0].Path)
	assert.Equal(t, older, infos[1].Path)
}
