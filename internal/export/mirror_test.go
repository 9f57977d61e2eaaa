package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()
	rows, err := file.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func sampleEnquiry(id, name string) models.Enquiry {
	return models.Enquiry{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Contact:   "+700000",
		Package:   "Bali Trip",
		Message:   "Call me",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestXLSXMirror_Append_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enquiries.xlsx")
	mirror := NewXLSXMirror(path)

	require.NoError(t, mirror.Append(sampleEnquiry("e1", "John")))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Name", "Email", "Contact", "Package", "Message", "Timestamp"}, rows[0])
	assert.Equal(t, "e1", rows[1][0])
	assert.Equal(t, "John", rows[1][1])
	assert.Equal(t, "2024-05-01T12:00:00Z", rows[1][6])
}

func TestXLSXMirror_Append_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enquiries.xlsx")
	mirror := NewXLSXMirror(path)

	require.NoError(t, mirror.Append(sampleEnquiry("e1", "John")))
	require.NoError(t, mirror.Append(sampleEnquiry("e2", "Jane")))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "e1", rows[1][0])
	assert.Equal(t, "e2", rows[2][0])
}

func TestXLSXMirror_Rebuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enquiries.xlsx")
	mirror := NewXLSXMirror(path)

	require.NoError(t, mirror.Append(sampleEnquiry("e1", "John")))
	require.NoError(t, mirror.Append(sampleEnquiry("e2", "Jane")))

	require.NoError(t, mirror.Rebuild([]models.Enquiry{sampleEnquiry("e2", "Jane")}))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "e2", rows[1][0])
}

func TestXLSXMirror_Rebuild_EmptyListLeavesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enquiries.xlsx")
	mirror := NewXLSXMirror(path)

	require.NoError(t, mirror.Rebuild(nil))

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, "ID", rows[0][0])
}

func TestXLSXMirror_Resolve(t *testing.T) {
	t.Run("existing file returned as is", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enquiries.xlsx")
		mirror := NewXLSXMirror(path)
		require.NoError(t, mirror.Append(sampleEnquiry("e1", "John")))

		got, err := mirror.Resolve(nil)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing file rebuilt from enquiries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "enquiries.xlsx")
		mirror := NewXLSXMirror(path)

		got, err := mirror.Resolve([]models.Enquiry{sampleEnquiry("e1", "John")})
		require.NoError(t, err)
		assert.Equal(t, path, got)

		rows := readRows(t, path)
		require.Len(t, rows, 2)
		assert.Equal(t, "e1", rows[1][0])
	})

	t.Run("missing file and no enquiries", func(t *testing.T) {
		mirror := NewXLSXMirror(filepath.Join(t.TempDir(), "enquiries.xlsx"))

		_, err := mirror.Resolve(nil)
		assert.ErrorIs(t, err, ErrNotAvailable)
	})
}
