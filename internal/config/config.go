// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	Storage       `yaml:"storage"`
	JWTToken      `yaml:"jwttoken"`
	AdminFallback `yaml:"admin_fallback"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Storage структура с путями до файлов хранилища на локальном диске
type Storage struct {
	DataFile      string `yaml:"data_file"`      // JSON-документ с контентом
	AboutFile     string `yaml:"about_file"`     // JSON-документ страницы «О нас»
	UsersFile     string `yaml:"users_file"`     // JSON-документ с пользователями
	EnquiriesFile string `yaml:"enquiries_file"` // xlsx-зеркало заявок
	UploadDir     string `yaml:"upload_dir"`     // Каталог загруженных файлов
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// AdminFallback — встроенная учётная запись администратора, используемая
// когда имя пользователя отсутствует в users.json.
type AdminFallback struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"` // bcrypt-хэш пароля
}

// MustLoad функция для загрузки конфига, путь берётся из переменной CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
