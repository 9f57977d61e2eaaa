// Package models содержит доменные структуры контент-бекенда туристического
// агентства: единый JSON-документ с четырьмя коллекциями, учётные записи
// пользователей и вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Document — единый JSON-документ, хранящий все четыре коллекции контента.
// Инвариант: все четыре ключа всегда присутствуют и всегда являются списками,
// даже если в файле они отсутствовали или были повреждены (см. storage.DocumentStore).
type Document struct {
	Packages            []Package `json:"packages"`              // Все туристические пакеты
	HighSellingPackages []Package `json:"high_selling_packages"` // Популярные пакеты (без duration/includes)
	HomeImages          []Image   `json:"home_images"`           // Изображения главной страницы
	Enquiries           []Enquiry `json:"enquiries"`             // Заявки клиентов
}

// Normalize приводит документ к инварианту: nil-списки заменяются пустыми,
// чтобы в JSON всегда сериализовались [] вместо null.
// Возвращает true, если документ пришлось исправлять.
func (d *Document) Normalize() bool {
	healed := false
	if d.Packages == nil {
		d.Packages = []Package{}
		healed = true
	}
	if d.HighSellingPackages == nil {
		d.HighSellingPackages = []Package{}
		healed = true
	}
	if d.HomeImages == nil {
		d.HomeImages = []Image{}
		healed = true
	}
	if d.Enquiries == nil {
		d.Enquiries = []Enquiry{}
		healed = true
	}
	return healed
}

// Package представляет туристический пакет. Для коллекции
// high_selling_packages поля Duration и Includes не заполняются.
type Package struct {
	ID          string     `json:"id"`                 // Уникальный идентификатор (UUID), неизменяемый
	Name        string     `json:"name"`               // Название пакета
	Price       string     `json:"price"`              // Цена (строка, как вводит администратор)
	Description string     `json:"description"`        // Описание
	Duration    string     `json:"duration,omitempty"` // Длительность тура
	Includes    StringList `json:"includes,omitempty"` // Что входит в пакет
	Image       *string    `json:"image"`              // URL изображения, nil пока не загружено
	CreatedAt   time.Time  `json:"created_at"`         // Время создания
}

// Image представляет загруженное изображение главной страницы.
// Запись неизменяема после создания, удаление также убирает файл с диска.
type Image struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Enquiry представляет заявку клиента с публичной формы обратной связи.
type Enquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Package   string    `json:"package"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// StringList — список непустых строк. При разборе JSON принимает как массив,
// так и строку с разделителями-запятыми; элементы обрезаются, пустые отбрасываются.
type StringList []string

// UnmarshalJSON реализует разбор массива строк или строки через запятую.
func (s *StringList) UnmarshalJSON(b []byte) error {
	var items []string
	if err := json.Unmarshal(b, &items); err == nil {
		*s = trimNonEmpty(items)
		return nil
	}
	var joined string
	if err := json.Unmarshal(b, &joined); err == nil {
		*s = trimNonEmpty(strings.Split(joined, ","))
		return nil
	}
	return fmt.Errorf("includes: expected array of strings or comma-separated string")
}

func trimNonEmpty(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
