package saveconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/savecore/saveconf"
)

func TestDefaultConfig(t *testing.T) {
	cfg := saveconf.Default()
	assert.Equal(t, "_SaveEditorBackups", cfg.BackupDirName)
	assert.Equal(t, 16*1024*1024, cfg.MaxStringBytes)
	assert.True(t, cfg.HasNavalExpansion([]string{"WarSails"}))
	assert.True(t, cfg.HasNavalExpansion([]string{"warsails"}))
	assert.False(t, cfg.HasNavalExpansion([]string{"SomeOtherMod"}))
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	contents := `
backup_dir_name = "MyBackups"
naval_expansion_ids = ["CustomNaval"]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := saveconf.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "MyBackups", cfg.BackupDirName)
	assert.Equal(t, []string{"CustomNaval"}, cfg.NavalExpansionIDs)
	assert.Equal(t, 16*1024*1024, cfg.MaxStringBytes, "unset fields keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := saveconf.Load("/no/such/file.toml")
	assert.Error(t, err)
}
