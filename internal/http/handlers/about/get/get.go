package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения страницы «О нас».
type Service interface {
	Get() models.About
}

// Handler обрабатывает публичные запросы на получение страницы «О нас».
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
// @Summary Страница «О нас»
// @Tags About
// @Produce  json
// @Success 200 {object} response.Response "Содержимое страницы"
// @Router /api/about [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.about.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	about := h.service.Get()

	log.Info("about content served")
	render.JSON(w, r, response.OKWithData(about))
}
