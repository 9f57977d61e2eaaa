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

// Service описывает интерфейс бизнес-логики удаления пакета.
type Service interface {
	DeletePackage(kind services.PackageKind, id string) error
}

// Handler обрабатывает запросы на удаление пакета.
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
// @Summary Удалить пакет
// @Description Удаляет пакет по id из выбранной коллекции.
// @Tags Packages
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор пакета"
// @Success 200 {object} response.Response "Пакет удалён"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении"
// @Router /api/packages/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.DeletePackage(h.kind, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Error("package not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Package not found"))
			return
		}
		log.Error("failed to delete package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete package"))
		return
	}

	log.Info("package deleted", slog.String("id", id))
	render.JSON(w, r, response.OK("Package deleted successfully"))
}
