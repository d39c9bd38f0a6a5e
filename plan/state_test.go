package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(component string) *InstallRecord {
	return &InstallRecord{
		Component:   component,
		Version:     "0.1.0",
		InstalledAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		RunID:       "run-1",
		Files:       []string{"src/shared/ui/dialog/dialog.rs"},
		Checksums:   map[string]string{"src/shared/ui/dialog/dialog.rs": "cbf29ce484222325"},
		Layout:      "default",
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"dialog", "select", "tabs", "a", "my-component", "c360"}
	for _, slug := range valid {
		assert.NoError(t, ValidateSlug(slug), "slug %q should be valid", slug)
	}

	invalid := []string{
		"", "Dialog", "-dialog", "dialog-", "dia_log", "a/b", `a\b`,
		"../escape", "dialog..", strings.Repeat("a", 60),
	}
	for _, slug := range invalid {
		assert.ErrorIs(t, ValidateSlug(slug), ErrInvalidSlug, "slug %q should be invalid", slug)
	}
}

func TestStoreSaveLoadDelete(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(sampleRecord("Dialog")))
	assert.True(t, store.IsInstalled("Dialog"))
	assert.True(t, store.IsInstalled("dialog"))

	record, err := store.Load("dialog")
	require.NoError(t, err)
	assert.Equal(t, "Dialog", record.Component)
	assert.Equal(t, "0.1.0", record.Version)
	assert.Len(t, record.Files, 1)

	require.NoError(t, store.Delete("Dialog"))
	assert.False(t, store.IsInstalled("Dialog"))

	_, err = store.Load("Dialog")
	assert.ErrorIs(t, err, ErrNotInstalled)
	assert.ErrorIs(t, store.Delete("Dialog"), ErrNotInstalled)
}

func TestStoreRejectsBadSlugs(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load("../escape")
	assert.ErrorIs(t, err, ErrInvalidSlug)

	err = store.Save(&InstallRecord{Component: "../escape"})
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestStoreList(t *testing.T) {
	store := NewStore(t.TempDir())

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, store.Save(sampleRecord("Tabs")))
	require.NoError(t, store.Save(sampleRecord("Dialog")))
	require.NoError(t, store.Save(sampleRecord("Select")))

	records, err = store.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Dialog", records[0].Component)
	assert.Equal(t, "Select", records[1].Component)
	assert.Equal(t, "Tabs", records[2].Component)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(sampleRecord("Dialog")))
	updated := sampleRecord("Dialog")
	updated.Version = "0.2.0"
	require.NoError(t, store.Save(updated))

	record, err := store.Load("Dialog")
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", record.Version)
}
