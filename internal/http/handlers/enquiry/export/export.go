// Package export реализует HTTP-обработчик скачивания xlsx-файла заявок.
package export

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	exportmirror "github.com/magabrotheeeer/travel-backend/internal/export"
	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики экспорта заявок.
type Service interface {
	ExportEnquiries() (string, error)
}

// Handler обрабатывает запросы на скачивание xlsx-файла заявок.
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
// @Summary Экспорт заявок
// @Description Отдаёт xlsx-файл заявок, перестраивая его при отсутствии.
// @Tags Enquiries
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "xlsx-файл заявок"
// @Failure 404 {object} response.ErrorResponse "Файл недоступен"
// @Router /api/enquiries/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.enquiry.export"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	path, err := h.service.ExportEnquiries()
	if err != nil {
		if errors.Is(err, exportmirror.ErrNotAvailable) {
			log.Error("export is not available")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("enquiries.xlsx is not available"))
			return
		}
		log.Error("failed to export enquiries", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export enquiries"))
		return
	}

	log.Info("serving enquiries export", slog.String("path", path))
	w.Header().Set("Content-Disposition", "attachment; filename="+filepath.Base(path))
	http.ServeFile(w, r, path)
}
