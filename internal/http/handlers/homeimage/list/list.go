package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения изображений главной страницы.
type Service interface {
	ListHomeImages() []models.Image
}

// Handler обрабатывает публичные запросы на получение изображений главной страницы.
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
// @Summary Список изображений главной страницы
// @Tags HomeImages
// @Produce  json
// @Success 200 {object} response.Response "Список изображений"
// @Router /api/home-images [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.homeimage.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	images := h.service.ListHomeImages()

	log.Info("list home images", slog.Int("count", len(images)))
	render.JSON(w, r, response.OKWithData(images))
}
