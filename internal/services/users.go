package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-backend/internal/lib/password"
	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/storage"
)

// UserService реализует управление учётными записями поверх users.json.
// Уникальность username и email проверяется повторным проходом по полному
// списку на каждом пути создания и изменения — хранилище её не гарантирует.
type UserService struct {
	store *storage.UserStore
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(store *storage.UserStore) *UserService {
	return &UserService{store: store}
}

// List возвращает всех пользователей без хэшей паролей.
func (s *UserService) List() []models.PublicUser {
	users := s.store.Load()
	result := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result
}

// Create добавляет пользователя. Роль по умолчанию — user.
// Возвращает ErrUsernameTaken или ErrEmailTaken при дубликате.
func (s *UserService) Create(req models.DummyUser) (models.PublicUser, error) {
	const op = "services.UserService.Create"

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	role := req.Role
	if role == "" {
		role = "user"
	}
	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	err = s.store.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Username == req.Username {
				return nil, ErrUsernameTaken
			}
			if u.Email == req.Email {
				return nil, ErrEmailTaken
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// Update изменяет переданные поля пользователя. Смена username и email
// повторно проверяется на уникальность, непустой пароль перехэшируется,
// updated_at проставляется всегда. Возвращает ErrNotFound, если
// пользователя с таким id нет.
func (s *UserService) Update(id string, patch models.PatchUser) (models.PublicUser, error) {
	const op = "services.UserService.Update"

	var updated models.PublicUser
	err := s.store.Update(func(users []models.User) ([]models.User, error) {
		index := -1
		for i := range users {
			if users[i].ID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, ErrNotFound
		}
		user := &users[index]

		if patch.Username != nil && *patch.Username != user.Username {
			for _, u := range users {
				if u.Username == *patch.Username {
					return nil, ErrUsernameTaken
				}
			}
			user.Username = *patch.Username
		}
		if patch.Email != nil && *patch.Email != user.Email {
			for _, u := range users {
				if u.Email == *patch.Email {
					return nil, ErrEmailTaken
				}
			}
			user.Email = *patch.Email
		}
		if patch.Password != nil && *patch.Password != "" {
			hash, err := password.GetHash(*patch.Password)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			user.PasswordHash = hash
		}
		if patch.Role != nil {
			user.Role = *patch.Role
		}
		now := time.Now()
		user.UpdatedAt = &now

		updated = user.Public()
		return users, nil
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	return updated, nil
}

// Delete удаляет пользователя по id. Возвращает ErrNotFound, если его нет.
func (s *UserService) Delete(id string) error {
	return s.store.Update(func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == id {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
}
