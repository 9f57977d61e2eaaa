package models

import "time"

// About — единственный документ страницы «О нас».
// Семантика замены: при обновлении перезаписывается целиком.
type About struct {
	Content   string     `json:"content"`
	Video     string     `json:"video"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
