// Package uploadimage реализует HTTP-обработчик загрузки изображения пакета.
//
// Файл принимается multipart-формой в поле file, сохраняется в каталог
// загрузок и его URL прописывается в поле image пакета.
package uploadimage

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

// Ограничение на размер multipart-формы при разборе, 32 МБ.
const maxUploadMemory = 32 << 20

// Response — структура ответа с URL загруженного изображения.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Image   string `json:"image"`
}

// Service описывает интерфейс бизнес-логики прикрепления изображения к пакету.
type Service interface {
	AttachPackageImage(kind services.PackageKind, id, originalName string, r io.Reader) (string, error)
}

// Handler управляет HTTP-запросами на загрузку изображений пакетов.
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
// @Summary Загрузить изображение пакета
// @Description Сохраняет файл из multipart-поля file и прописывает его URL в пакет.
// @Tags Packages
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор пакета"
// @Param file formData file true "Файл изображения"
// @Success 200 {object} Response "Изображение загружено"
// @Failure 400 {object} response.MessageResponse "Файл не передан"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при загрузке"
// @Router /api/packages/{id}/image [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.uploadimage"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg("No file provided"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error("file is missing in form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg("No file provided"))
		return
	}
	defer func() {
		_ = file.Close()
	}()
	if header.Filename == "" {
		log.Error("empty filename")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg("No file selected"))
		return
	}

	id := chi.URLParam(r, "id")
	url, err := h.service.AttachPackageImage(h.kind, id, header.Filename, file)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Error("package not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Package not found"))
			return
		}
		log.Error("failed to attach image", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not upload image"))
		return
	}

	log.Info("image uploaded", slog.String("id", id), slog.String("url", url))
	render.JSON(w, r, Response{
		Success: true,
		Message: "Image uploaded successfully",
		Image:   url,
	})
}
