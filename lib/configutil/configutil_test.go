package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int    `json:"port"`
	Catalog string `json:"catalog"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.json5")

	err := os.WriteFile(base, []byte(`{port: 8458, catalog: "data/catalog.json"}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{port: 9000}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, 9000, config.Port, "local file should win")
	require.Equal(t, "data/catalog.json", config.Catalog, "unset override fields keep the base value")
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "config.local.json5", localPath("config.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json5"), localPath(filepath.Join("a", "b.json5")))
}
