package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

func newTestDocumentStore(t *testing.T) (*DocumentStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	return NewDocumentStore(path), path
}

func TestDocumentStore_Load_MissingFile(t *testing.T) {
	store, path := newTestDocumentStore(t)

	doc := store.Load()

	require.NotNil(t, doc)
	assert.Empty(t, doc.Packages)
	assert.Empty(t, doc.HighSellingPackages)
	assert.Empty(t, doc.HomeImages)
	assert.Empty(t, doc.Enquiries)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "missing file must not be created by Load")
}

func TestDocumentStore_Load_HealsDamagedFile(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing keys",
			raw:  `{"packages": []}`,
		},
		{
			name: "non-list value",
			raw:  `{"packages": "oops", "home_images": 42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestDocumentStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o644))

			doc := store.Load()
			require.NotNil(t, doc)
			assert.NotNil(t, doc.Packages)
			assert.NotNil(t, doc.HighSellingPackages)
			assert.NotNil(t, doc.HomeImages)
			assert.NotNil(t, doc.Enquiries)

			// Исправленная форма сохраняется сразу, повторная загрузка
			// возвращает идентичные байты.
			healed, err := os.ReadFile(path)
			require.NoError(t, err)

			store.Load()
			again, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, healed, again)
		})
	}
}

func TestDocumentStore_Load_UnparsableFileLeftUntouched(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "broken syntax",
			raw:  `{"packages": [`,
		},
		{
			name: "empty file",
			raw:  ``,
		},
		{
			name: "not json at all",
			raw:  `<html>backup page</html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestDocumentStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o644))

			doc := store.Load()
			require.NotNil(t, doc)
			assert.Empty(t, doc.Packages)
			assert.Empty(t, doc.HighSellingPackages)
			assert.Empty(t, doc.HomeImages)
			assert.Empty(t, doc.Enquiries)

			// Нечитаемый файл остаётся на диске как был: его содержимое
			// ещё можно восстановить вручную.
			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.raw), raw)
		})
	}
}

func TestDocumentStore_Load_PartialDamageKeepsGoodCollections(t *testing.T) {
	store, path := newTestDocumentStore(t)
	raw := `{
  "packages": [{"id": "p1", "name": "Bali", "price": "999"}],
  "high_selling_packages": "corrupted",
  "home_images": [],
  "enquiries": []
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc := store.Load()

	require.Len(t, doc.Packages, 1)
	assert.Equal(t, "Bali", doc.Packages[0].Name)
	assert.Empty(t, doc.HighSellingPackages)
}

func TestDocumentStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store, _ := newTestDocumentStore(t)

	doc := &models.Document{
		Packages: []models.Package{
			{ID: "p1", Name: "Bali Trip", Price: "1200", Includes: models.StringList{"hotel", "flight"}},
		},
	}
	require.NoError(t, store.Save(doc))

	got := store.Load()
	require.Len(t, got.Packages, 1)
	assert.Equal(t, "Bali Trip", got.Packages[0].Name)
	assert.Equal(t, models.StringList{"hotel", "flight"}, got.Packages[0].Includes)
	assert.NotNil(t, got.Enquiries)
}

func TestDocumentStore_Update_SavesOnSuccess(t *testing.T) {
	store, _ := newTestDocumentStore(t)

	err := store.Update(func(doc *models.Document) error {
		doc.Enquiries = append(doc.Enquiries, models.Enquiry{ID: "e1", Name: "John"})
		return nil
	})
	require.NoError(t, err)

	got := store.Load()
	require.Len(t, got.Enquiries, 1)
	assert.Equal(t, "John", got.Enquiries[0].Name)
}

func TestDocumentStore_Update_ErrorLeavesFileUntouched(t *testing.T) {
	store, _ := newTestDocumentStore(t)
	require.NoError(t, store.Update(func(doc *models.Document) error {
		doc.Packages = append(doc.Packages, models.Package{ID: "p1", Name: "Keep"})
		return nil
	}))

	wantErr := errors.New("not found")
	err := store.Update(func(doc *models.Document) error {
		doc.Packages = nil
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	got := store.Load()
	require.Len(t, got.Packages, 1)
	assert.Equal(t, "Keep", got.Packages[0].Name)
}
