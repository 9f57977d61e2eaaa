// Package update реализует HTTP-обработчик замены страницы «О нас».
// Документ заменяется целиком: непереданные поля становятся пустыми.
package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики замены страницы «О нас».
type Service interface {
	Replace(req models.DummyAbout) (models.About, error)
}

// Handler управляет HTTP-запросами на обновление страницы «О нас».
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
// @Summary Обновить страницу «О нас»
// @Tags About
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyAbout true "Содержимое страницы"
// @Success 200 {object} response.Response "Страница обновлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении"
// @Router /api/about [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.about.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyAbout
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if _, err := h.service.Replace(req); err != nil {
		log.Error("failed to update about content", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update about content"))
		return
	}

	log.Info("about content updated")
	render.JSON(w, r, response.OK("About content updated successfully"))
}
