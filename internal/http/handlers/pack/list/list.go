package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

// Service описывает интерфейс бизнес-логики чтения пакетов.
type Service interface {
	ListPackages(kind services.PackageKind) []models.Package
}

// Handler обрабатывает публичные запросы на получение коллекции пакетов.
type Handler struct {
	log     *slog.Logger
	service Service
	kind    services.PackageKind
}

// New создает новый Handler для указанной коллекции пакетов.
func New(log *slog.Logger, service Service, kind services.PackageKind) *Handler {
	return &Handler{
		log:     log,
		service: service,
		kind:    kind,
	}
}

// ServeHTTP godoc
// @Summary Список пакетов
// @Description Возвращает пакеты выбранной коллекции в порядке добавления.
// @Tags Packages
// @Produce  json
// @Success 200 {object} response.Response "Список пакетов"
// @Router /api/packages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	packages := h.service.ListPackages(h.kind)

	log.Info("list packages", slog.Int("count", len(packages)))
	render.JSON(w, r, response.OKWithData(packages))
}
