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

// Service описывает интерфейс бизнес-логики удаления заявки.
type Service interface {
	DeleteEnquiry(id string) (string, error)
}

// Handler обрабатывает запросы на удаление заявки.
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
// @Summary Удалить заявку
// @Description Удаляет заявку по id и перестраивает xlsx-зеркало.
// @Tags Enquiries
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор заявки"
// @Success 200 {object} response.Response "Заявка удалена"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении"
// @Router /api/enquiries/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.enquiry.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	warning, err := h.service.DeleteEnquiry(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Error("enquiry not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Enquiry not found"))
			return
		}
		log.Error("failed to delete enquiry", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete enquiry"))
		return
	}
	if warning != "" {
		log.Warn("export mirror rebuild failed", slog.String("warning", warning))
	}

	log.Info("enquiry deleted", slog.String("id", id))
	resp := response.OK("Enquiry deleted successfully")
	resp.Warning = warning
	render.JSON(w, r, resp)
}
