package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore хранит загруженные бинарные файлы (изображения, видео) в одном
// каталоге под сгенерированными именами вида <uuid>_<оригинальное имя>.
// Осиротевшие файлы после обновления записей не вычищаются.
type FileStore struct {
	dir string
}

// NewFileStore создает каталог загрузок, если его нет, и возвращает хранилище.
func NewFileStore(dir string) (*FileStore, error) {
	const op = "storage.NewFileStore"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir возвращает каталог загрузок, используется для раздачи статики.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save записывает содержимое r под именем <uuid>_<originalName> и возвращает
// сгенерированное имя файла. Имя исходного файла обрезается до базового,
// чтобы исключить выход за пределы каталога.
func (s *FileStore) Save(originalName string, r io.Reader) (string, error) {
	const op = "storage.FileStore.Save"
	filename := uuid.NewString() + "_" + filepath.Base(originalName)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return filename, nil
}

// Remove удаляет файл по имени. Ошибки игнорируются: удаление файла —
// вспомогательная операция, запись в JSON-документе уже изменена.
func (s *FileStore) Remove(filename string) {
	if filename == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}
