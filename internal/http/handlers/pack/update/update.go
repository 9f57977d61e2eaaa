// Package update реализует HTTP-обработчик частичного обновления пакета.
//
// Поля, отсутствующие в запросе, сохраняют прежние значения. Отсутствующий
// id единообразно возвращает 404 для обеих коллекций.
package update

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

// Service описывает интерфейс бизнес-логики обновления пакета.
type Service interface {
	UpdatePackage(kind services.PackageKind, id string, patch models.PatchPackage) error
}

// Handler управляет HTTP-запросами на обновление пакетов.
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
// @Summary Обновить пакет
// @Description Частично обновляет пакет: непереданные поля не изменяются.
// @Tags Packages
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор пакета"
// @Param request body models.PatchPackage true "Изменяемые поля"
// @Success 200 {object} response.Response "Пакет обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении"
// @Router /api/packages/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var patch models.PatchPackage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.UpdatePackage(h.kind, id, patch); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Error("package not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Package not found"))
			return
		}
		log.Error("failed to update package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update package"))
		return
	}

	log.Info("package updated", slog.String("id", id))
	render.JSON(w, r, response.OK("Package updated successfully"))
}
