package models

// DummyPackage используется для приёма данных из JSON-запроса на создание
// пакета, прежде чем конвертировать их в Package. Для high_selling_packages
// поля Duration и Includes игнорируются.
type DummyPackage struct {
	Name        string     `json:"name" validate:"required"`  // Название пакета
	Price       string     `json:"price" validate:"required"` // Цена
	Description string     `json:"description"`               // Описание
	Duration    string     `json:"duration"`                  // Длительность тура
	Includes    StringList `json:"includes"`                  // Что входит в пакет
}

// PatchPackage используется для частичного обновления пакета.
// nil-поля не изменяют существующие значения.
type PatchPackage struct {
	Name        *string     `json:"name"`
	Price       *string     `json:"price"`
	Description *string     `json:"description"`
	Duration    *string     `json:"duration"`
	Includes    *StringList `json:"includes"`
}

// DummyEnquiry используется для приёма заявки с публичной формы.
// Проверка обязательности полей (name и email-или-contact) выполняется
// вручную после обрезки пробелов, поэтому validate-теги не используются.
type DummyEnquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Package string `json:"package"`
	Message string `json:"message"`
}

// DummyUser используется для приёма данных на создание пользователя.
type DummyUser struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"` // По умолчанию user
}

// PatchUser используется для частичного обновления пользователя.
// Пустой пароль означает «не менять».
type PatchUser struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// DummyAbout используется для приёма содержимого страницы «О нас».
type DummyAbout struct {
	Content string `json:"content"`
	Video   string `json:"video"`
}
