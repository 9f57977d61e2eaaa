// Package models содержит доменную модель пользователя админ-панели,
// включающую данные учётной записи, хэш пароля и даты создания/обновления.
// Структура используется в бизнес-логике и при работе с хранилищем users.json.
package models

import "time"

// User представляет учётную запись сотрудника или администратора.
type User struct {
	ID           string     `json:"id"`                   // Уникальный идентификатор пользователя
	Username     string     `json:"username"`             // Имя пользователя (уникальное)
	Email        string     `json:"email"`                // Электронная почта (уникальная)
	PasswordHash string     `json:"password"`             // bcrypt-хэш пароля, никогда не отдаётся в API
	Role         string     `json:"role"`                 // Роль пользователя, admin или user
	CreatedAt    time.Time  `json:"created_at"`           // Время создания
	UpdatedAt    *time.Time `json:"updated_at,omitempty"` // Время последнего изменения
}

// PublicUser — представление пользователя для API-ответов, без хэша пароля.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public возвращает представление пользователя без пароля.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
