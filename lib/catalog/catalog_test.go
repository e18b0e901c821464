package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "Anvil", Aliases: []string{"Anvil Blueprint"}},
		{Name: "Pliers", Aliases: []string{"Pliers Blueprint"}},
		{Name: "Atlas Chassis"},
	}
}

func TestLookup(t *testing.T) {
	store := New(testEntries())

	e, ok := store.Lookup("anvil")
	require.True(t, ok)
	require.Equal(t, "Anvil", e.Name)

	e, ok = store.Lookup("ANVIL  blueprint")
	require.True(t, ok)
	require.Equal(t, "Anvil", e.Name)

	_, ok = store.Lookup("rocket launcher")
	require.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	err := os.WriteFile(path, []byte(`[
		{"name": "Anvil", "aliases": ["Anvil Blueprint"], "workshop": "Weapons"},
		{"name": "Pliers"}
	]`), 0644)
	require.NoError(t, err)

	store, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	e, ok := store.Lookup("anvil blueprint")
	require.True(t, ok)
	require.Equal(t, "Weapons", e.Workshop)
}

func TestNamesOrder(t *testing.T) {
	store := New(testEntries())
	names := store.Names()
	require.Equal(t, "Anvil", names[0].Text)
	require.Equal(t, "Anvil Blueprint", names[1].Text)
	require.Equal(t, 0, names[1].Entry)
	require.Equal(t, "Pliers", names[2].Text)
}
