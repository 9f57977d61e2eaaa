package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// AboutStore хранит единственный документ страницы «О нас».
// Обновление всегда заменяет документ целиком.
type AboutStore struct {
	path string
	mu   sync.Mutex
}

// NewAboutStore создает хранилище документа «О нас» по указанному пути.
func NewAboutStore(path string) *AboutStore {
	return &AboutStore{path: path}
}

// Load возвращает документ «О нас». Отсутствующий или повреждённый файл
// даёт документ с пустым содержимым, загрузка никогда не завершается ошибкой.
func (s *AboutStore) Load() models.About {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *AboutStore) load() models.About {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.About{}
	}
	var about models.About
	if err := json.Unmarshal(raw, &about); err != nil {
		return models.About{}
	}
	return about
}

// Save перезаписывает документ «О нас» целиком.
func (s *AboutStore) Save(about models.About) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(about)
}

func (s *AboutStore) save(about models.About) error {
	const op = "storage.AboutStore.save"
	raw, err := json.MarshalIndent(about, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update выполняет цикл load-modify-save под мьютексом хранилища.
func (s *AboutStore) Update(fn func(about *models.About) error) error {
	const op = "storage.AboutStore.Update"
	s.mu.Lock()
	defer s.mu.Unlock()

	about := s.load()
	if err := fn(&about); err != nil {
		return err
	}
	if err := s.save(about); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
