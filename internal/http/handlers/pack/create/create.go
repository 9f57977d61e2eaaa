// Package create реализует HTTP-обработчик для создания туристических пакетов.
//
// Один и тот же обработчик обслуживает обе коллекции: /api/packages и
// /api/high-selling-packages; коллекция выбирается при конструировании.
// Для популярных пакетов поля duration и includes игнорируются.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

// Response — структура ответа с созданным пакетом.
type Response struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Package models.Package `json:"package"`
}

// Service описывает интерфейс бизнес-логики создания пакета.
type Service interface {
	CreatePackage(kind services.PackageKind, req models.DummyPackage) (models.Package, error)
}

// Handler управляет HTTP-запросами на создание пакетов.
type Handler struct {
	log      *slog.Logger
	service  Service
	kind     services.PackageKind
	validate *validator.Validate
}

// New создает новый Handler для указанной коллекции пакетов.
func New(log *slog.Logger, service Service, kind services.PackageKind) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		kind:     kind,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать пакет
// @Description Создает туристический пакет в выбранной коллекции.
// @Tags Packages
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyPackage true "Данные нового пакета"
// @Success 201 {object} Response "Пакет создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании пакета"
// @Router /api/packages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPackage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	pkg, err := h.service.CreatePackage(h.kind, req)
	if err != nil {
		log.Error("failed to create package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create package"))
		return
	}

	log.Info("package created", slog.String("id", pkg.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		Success: true,
		Message: "Package created successfully",
		Package: pkg,
	})
}
