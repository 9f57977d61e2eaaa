package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

func TestUserStore_Load_MissingOrBrokenFile(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
	}{
		{
			name: "missing file",
			raw:  nil,
		},
		{
			name: "broken json",
			raw:  strPtr(`[{"id":`),
		},
		{
			name: "null content",
			raw:  strPtr(`null`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.json")
			if tt.raw != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.raw), 0o644))
			}
			store := NewUserStore(path)

			users := store.Load()
			require.NotNil(t, users)
			assert.Empty(t, users)
		})
	}
}

func TestUserStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := NewUserStore(filepath.Join(t.TempDir(), "users.json"))

	want := []models.User{
		{ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: "hash", Role: "admin"},
		{ID: "u2", Username: "bob", Email: "bob@example.com", PasswordHash: "hash2", Role: "user"},
	}
	require.NoError(t, store.Save(want))

	got := store.Load()
	assert.Equal(t, want, got)
}

func TestUserStore_Update_ErrorLeavesFileUntouched(t *testing.T) {
	store := NewUserStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, store.Save([]models.User{{ID: "u1", Username: "alice"}}))

	wantErr := errors.New("username taken")
	err := store.Update(func(users []models.User) ([]models.User, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	got := store.Load()
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)
}

func TestFileStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	filename, err := store.Save("../../etc/passwd.png", bytes.NewReader([]byte("image-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, "_passwd.png"), "path components must be stripped")

	raw, err := os.ReadFile(filepath.Join(store.Dir(), filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), raw)

	store.Remove(filename)
	_, err = os.Stat(filepath.Join(store.Dir(), filename))
	assert.True(t, os.IsNotExist(err))

	// Повторное удаление и пустое имя безопасны.
	store.Remove(filename)
	store.Remove("")
}

func strPtr(s string) *string { return &s }
