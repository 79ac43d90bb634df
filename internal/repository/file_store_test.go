package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-hours/internal/domain"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileOverrideStore(filepath.Join(t.TempDir(), "data.json"))

	overrides, err := store.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, overrides)
	assert.NotNil(t, overrides)
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	for name, content := range map[string]string{
		"garbage": "{not json",
		"empty":   "",
		"array":   "[1, 2]",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			overrides, err := NewFileOverrideStore(path).LoadAll(context.Background())

			assert.ErrorIs(t, err, ErrCorruptDocument)
			assert.Empty(t, overrides)
		})
	}
}

func TestFileStoreReadsLegacyShapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	legacy := `{
  "2024-12-24": [9, 12],
  "2024-12-25": [null, null],
  "2024-12-26": [null, 18],
  "2024-12-27": null,
  "2024-12-28": [10, 14.5]
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	overrides, err := NewFileOverrideStore(path).LoadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Overrides{
		"2024-12-24": domain.OpenDay(9, 12),
		"2024-12-25": domain.ClosedDay(),
		"2024-12-26": domain.ClosedDay(),
		"2024-12-27": domain.ClosedDay(),
		"2024-12-28": domain.OpenDay(10, 14.5),
	}, overrides)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewFileOverrideStore(path)
	original := domain.Overrides{
		"2024-12-24": domain.OpenDay(9, 12),
		"2024-12-25": domain.ClosedDay(),
		"2025-01-07": domain.OpenDay(10, 14.5),
	}

	require.NoError(t, store.SaveAll(ctx, original))
	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	require.NoError(t, store.SaveAll(ctx, loaded))
	reloaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}

func TestFileStoreWritesReadableDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewFileOverrideStore(path)

	require.NoError(t, store.SaveAll(context.Background(), domain.Overrides{
		"2024-12-25": domain.ClosedDay(),
		"2024-12-24": domain.OpenDay(9, 12),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.JSONEq(t, `{"2024-12-24": [9, 12], "2024-12-25": [null, null]}`, content)
	assert.Contains(t, content, "\n  \"2024-12-24\": [")
	assert.Less(t, strings.Index(content, "2024-12-24"), strings.Index(content, "2024-12-25"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestEncodeDocumentKeepsNonASCII(t *testing.T) {
	data, err := EncodeDocument(domain.Overrides{"Božić <praznik>": domain.ClosedDay()})

	require.NoError(t, err)
	assert.Contains(t, string(data), "Božić <praznik>")
}

func TestFileStoreDeleteMissingKeyLeavesFileUntouched(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	document := "{\"2024-12-25\":[null,null]}"
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	require.NoError(t, NewFileOverrideStore(path).Delete(ctx, "2030-01-01"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, document, string(data))
}

func TestFileStoreDeleteWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	require.NoError(t, NewFileOverrideStore(path).Delete(context.Background(), "2024-12-25"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreDeleteExistingKey(t *testing.T) {
	ctx := context.Background()
	store := NewFileOverrideStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, store.SaveAll(ctx, domain.Overrides{
		"2024-12-24": domain.OpenDay(9, 12),
		"2024-12-25": domain.ClosedDay(),
	}))

	require.NoError(t, store.Delete(ctx, "2024-12-25"))

	overrides, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Overrides{"2024-12-24": domain.OpenDay(9, 12)}, overrides)
}

func TestFileStoreWriteFailure(t *testing.T) {
	store := NewFileOverrideStore(filepath.Join(t.TempDir(), "missing-dir", "data.json"))

	err := store.SaveAll(context.Background(), domain.Overrides{"2024-12-25": domain.ClosedDay()})

	assert.Error(t, err)
}
