package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// UserStore хранит список пользователей в отдельном JSON-файле.
// Уникальность username и email проверяется вызывающим кодом
// (services.AuthService и services.UserService), а не хранилищем.
type UserStore struct {
	path string
	mu   sync.Mutex
}

// NewUserStore создает хранилище пользователей по указанному пути.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// Load возвращает всех пользователей. Любая ошибка чтения или разбора
// даёт пустой список, загрузка никогда не завершается ошибкой.
func (s *UserStore) Load() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *UserStore) load() []models.User {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []models.User{}
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil || users == nil {
		return []models.User{}
	}
	return users
}

// Save перезаписывает файл пользователей целиком.
func (s *UserStore) Save(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(users)
}

func (s *UserStore) save(users []models.User) error {
	const op = "storage.UserStore.save"
	if users == nil {
		users = []models.User{}
	}
	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update выполняет полный цикл load-modify-save под мьютексом хранилища.
// fn возвращает новый список; при ошибке файл не перезаписывается.
func (s *UserStore) Update(fn func(users []models.User) ([]models.User, error)) error {
	const op = "storage.UserStore.Update"
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := fn(s.load())
	if err != nil {
		return err
	}
	if err := s.save(users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
