package remove

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

// Service описывает интерфейс бизнес-логики удаления изображения.
type Service interface {
	DeleteHomeImage(id string) error
}

// Handler обрабатывает запросы на удаление изображения главной страницы.
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
// @Summary Удалить изображение главной страницы
// @Description Удаляет запись и best-effort удаляет файл с диска.
// @Tags HomeImages
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор изображения"
// @Success 200 {object} response.Response "Изображение удалено"
// @Failure 404 {object} response.ErrorResponse "Изображение не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении"
// @Router /api/home-images/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.homeimage.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteHomeImage(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Error("home image not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Image not found"))
			return
		}
		log.Error("failed to delete home image", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete image"))
		return
	}

	log.Info("home image deleted", slog.String("id", id))
	render.JSON(w, r, response.OK("Image deleted successfully"))
}
