package services

import (
	"fmt"

	"github.com/magabrotheeeer/travel-backend/internal/config"
	"github.com/magabrotheeeer/travel-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-backend/internal/lib/password"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// UserLoader описывает контракт чтения пользователей для аутентификации.
type UserLoader interface {
	// Load возвращает всех пользователей; пустой список при любой ошибке чтения.
	Load() []models.User
}

// AuthService отвечает за вход пользователей и валидацию JWT.
//
// Сначала имя ищется в users.json; если его там нет, проверяется встроенная
// учётная запись администратора из конфигурации. Роль из валидного токена
// нигде дальше не проверяется: любой вошедший пользователь может выполнять
// все защищённые операции.
type AuthService struct {
	users    UserLoader
	jwtMaker jwt.Maker
	fallback config.AdminFallback
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserLoader, jwtMaker jwt.Maker, fallback config.AdminFallback) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		fallback: fallback,
	}
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Для пользователя из users.json в токен попадает его идентификатор;
// для встроенного администратора идентификатор равен nil, роль — admin.
func (s *AuthService) Login(username, rawPassword string) (token, role string, err error) {
	const op = "services.AuthService.Login"

	users := s.users.Load()
	var matched *models.User
	for i := range users {
		if users[i].Username == username {
			matched = &users[i]
			break
		}
	}

	if matched != nil {
		if matched.PasswordHash == "" || password.CompareHash(matched.PasswordHash, rawPassword) != nil {
			return "", "", ErrInvalidCredentials
		}
		role = matched.Role
		if role == "" {
			role = "user"
		}
		userUID := matched.ID
		token, err = s.jwtMaker.GenerateToken(username, role, &userUID)
		if err != nil {
			return "", "", fmt.Errorf("%s: %w", op, err)
		}
		return token, role, nil
	}

	if username != s.fallback.Username ||
		password.CompareHash(s.fallback.PasswordHash, rawPassword) != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(username, "admin", nil)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, "admin", nil
}

// ValidateToken проверяет подпись и срок действия JWT, возвращает его claims.
func (s *AuthService) ValidateToken(token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}
