// Package storage реализует файловые хранилища контент-бекенда: единый
// JSON-документ с коллекциями, список пользователей, документ «О нас» и
// каталог загруженных файлов. Каждое хранилище защищает цикл
// load-modify-save собственным мьютексом внутри одного процесса;
// конкуренция между процессами не координируется — последняя запись побеждает.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// DocumentStore хранит единый JSON-документ с четырьмя коллекциями контента.
type DocumentStore struct {
	path string
	mu   sync.Mutex
}

// NewDocumentStore создает хранилище документа по указанному пути.
func NewDocumentStore(path string) *DocumentStore {
	return &DocumentStore{path: path}
}

// Load читает документ с диска. Никогда не завершается ошибкой:
// отсутствующий, нечитаемый или синтаксически повреждённый файл даёт документ
// с четырьмя пустыми списками. Если существующий файл пришлось нормализовать
// (отсутствующий ключ или значение-не-список), исправленная форма сразу
// сохраняется, поэтому повторная загрузка возвращает идентичные байты.
// Целиком нечитаемый файл остаётся на диске нетронутым, чтобы его содержимое
// можно было восстановить вручную.
func (s *DocumentStore) Load() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *DocumentStore) load() *models.Document {
	doc := &models.Document{}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		doc.Normalize()
		return doc
	}

	healed := false
	if err := json.Unmarshal(raw, doc); err != nil {
		// Значение-не-список портит только своё поле, остальные декодируются.
		// Любая другая ошибка означает повреждённый файл целиком: отдаём
		// пустой документ, но файл не перезаписываем.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			*doc = models.Document{}
			doc.Normalize()
			return doc
		}
		healed = true
	}
	if doc.Normalize() {
		healed = true
	}
	if healed {
		_ = s.save(doc)
	}
	return doc
}

// Save сериализует и записывает весь документ, предварительно нормализуя его.
func (s *DocumentStore) Save(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *DocumentStore) save(doc *models.Document) error {
	const op = "storage.DocumentStore.save"
	doc.Normalize()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update выполняет полный цикл load-modify-save под мьютексом хранилища.
// fn получает нормализованный документ; если fn возвращает ошибку, документ
// не сохраняется, а ошибка возвращается вызывающему без оборачивания.
func (s *DocumentStore) Update(fn func(doc *models.Document) error) error {
	const op = "storage.DocumentStore.Update"
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.save(doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
