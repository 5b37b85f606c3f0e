package codec_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/savecore/codec"
	"github.com/tavernkeep/savecore/compress"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

func buildSave() *domain.Save {
	save := domain.NewSave()
	save.Header = domain.Header{
		HeaderVersion: 7,
		GameVersion:   "v1.2.10",
		Modules:       []domain.ModuleRef{{Id: "Native", Version: "1.0", IsOfficial: true}},
	}
	save.Metadata = domain.Metadata{CharacterName: "Ira", MainHeroLevel: 25, Gold: 50000}

	h := domain.NewHero(ids.New(ids.TagHero, 1), "Ira")
	h.Level = 25
	h.Gold = 50000
	h.Attributes.Vigor = 5
	h.Skills["OneHanded"] = 150
	save.Heroes.Add(h)

	p := domain.NewParty(ids.New(ids.TagParty, 1), "Ira's Warband", domain.PartyLord)
	p.Gold = 10000
	p.Food = 50
	p.Morale = 75
	save.Parties.Add(p)

	return save
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	save := buildSave()
	ctx := context.Background()

	require.NoError(t, codec.Write(ctx, save, path, codec.WriteOptions{CompressionLevel: compress.Optimal}))

	loaded, warnings, err := codec.Load(ctx, path, codec.LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, save.Header.HeaderVersion, loaded.Header.HeaderVersion)
	assert.Equal(t, save.Header.GameVersion, loaded.Header.GameVersion)
	assert.Equal(t, save.Metadata.CharacterName, loaded.Metadata.CharacterName)
	assert.Equal(t, save.Metadata.Gold, loaded.Metadata.Gold)

	gotHero, ok := loaded.ResolveHero(ids.New(ids.TagHero, 1))
	require.True(t, ok)
	assert.Equal(t, "Ira", gotHero.Name)
	assert.Equal(t, 25, gotHero.Level)

	gotParty, ok := loaded.ResolveParty(ids.New(ids.TagParty, 1))
	require.True(t, ok)
	assert.Equal(t, 10000, gotParty.Gold)
}

func TestLoadInfoDoesNotDecompressBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	save := buildSave()
	ctx := context.Background()
	require.NoError(t, codec.Write(ctx, save, path, codec.WriteOptions{CompressionLevel: compress.Optimal}))

	info, err := codec.LoadInfo(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Ira", info.CharacterName)
	assert.Equal(t, 25, info.Level)
	assert.Equal(t, int64(50000), info.Gold)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := codec.Load(context.Background(), "/no/such/save.sav", codec.LoadOptions{})
	assert.ErrorIs(t, err, codec.ErrFileNotFound)
}

func TestLoadMetadataOnlySkipsEntities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	save := buildSave()
	ctx := context.Background()
	require.NoError(t, codec.Write(ctx, save, path, codec.WriteOptions{CompressionLevel: compress.Optimal}))

	loaded, _, err := codec.Load(ctx, path, codec.LoadOptions{MetadataOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Heroes.Len())
	assert.Equal(t, "Ira", loaded.Metadata.CharacterName)
}
