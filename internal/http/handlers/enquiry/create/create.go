// Package create реализует HTTP-обработчик публичной формы заявок.
//
// Обработчик не требует аутентификации: форма доступна посетителям сайта.
// Поля обрезаются, проверяются обязательные (имя и email-или-контакт),
// затем заявка сохраняется и дописывается в xlsx-зеркало. Ошибка зеркала
// возвращается предупреждением рядом с успешным ответом.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// Response — структура ответа с созданной заявкой.
type Response struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Enquiry models.Enquiry `json:"enquiry"`
	Warning string         `json:"warning,omitempty"`
}

// Service описывает интерфейс бизнес-логики создания заявки.
type Service interface {
	CreateEnquiry(req models.DummyEnquiry) (models.Enquiry, string, error)
}

// Handler управляет HTTP-запросами на создание заявок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Создать заявку
// @Description Создает заявку клиента с публичной формы. Аутентификация не требуется.
// @Tags Enquiries
// @Accept  json
// @Produce  json
// @Param request body models.DummyEnquiry true "Данные заявки"
// @Success 201 {object} Response "Заявка создана"
// @Failure 400 {object} response.ErrorResponse "Отсутствуют обязательные поля"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении заявки"
// @Router /api/enquiries [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.enquiry.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyEnquiry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Package = strings.TrimSpace(req.Package)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		log.Error("name is required")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Name is required"))
		return
	}
	if req.Email == "" && req.Contact == "" {
		log.Error("email or contact is required")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Email or contact is required"))
		return
	}

	enquiry, warning, err := h.service.CreateEnquiry(req)
	if err != nil {
		log.Error("failed to create enquiry", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create enquiry"))
		return
	}
	if warning != "" {
		log.Warn("export mirror update failed", slog.String("warning", warning))
	}

	log.Info("enquiry created", slog.String("id", enquiry.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		Success: true,
		Message: "Enquiry created successfully",
		Enquiry: enquiry,
		Warning: warning,
	})
}
