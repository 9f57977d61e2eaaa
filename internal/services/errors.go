// Package services содержит логику бизнес-уровня контент-бекенда:
// аутентификацию, четыре коллекции контента, пользователей и страницу «О нас».
package services

import "errors"

// Ошибки бизнес-уровня. HTTP-обработчики сопоставляют их со статус-кодами:
// ErrNotFound — 404, ErrInvalidCredentials — 401,
// ErrUsernameTaken и ErrEmailTaken — 400.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
)
