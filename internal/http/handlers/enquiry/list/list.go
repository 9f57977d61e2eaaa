package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения заявок.
type Service interface {
	ListEnquiries() []models.Enquiry
}

// Handler обрабатывает запросы на получение всех заявок.
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
// @Summary Список заявок
// @Description Возвращает все заявки клиентов в порядке поступления.
// @Tags Enquiries
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Список заявок"
// @Router /api/enquiries [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.enquiry.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	enquiries := h.service.ListEnquiries()

	log.Info("list enquiries", slog.Int("count", len(enquiries)))
	render.JSON(w, r, response.OKWithData(enquiries))
}
