// Package uploadvideo реализует HTTP-обработчик загрузки видео для страницы «О нас».
package uploadvideo

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
)

// Ограничение на размер multipart-формы при разборе, 256 МБ: видео крупнее изображений.
const maxUploadMemory = 256 << 20

// Service описывает интерфейс бизнес-логики прикрепления видео.
type Service interface {
	AttachVideo(originalName string, r io.Reader) (string, error)
}

// Handler управляет HTTP-запросами на загрузку видео страницы «О нас».
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
// @Summary Загрузить видео страницы «О нас»
// @Tags About
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param file formData file true "Видеофайл"
// @Success 200 {object} response.Response "Видео загружено"
// @Failure 400 {object} response.MessageResponse "Файл не передан"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при загрузке"
// @Router /api/about/video [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.about.uploadvideo"

	log := h.log.With(
		slog.String("op", op),
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

	url, err := h.service.AttachVideo(header.Filename, file)
	if err != nil {
		log.Error("failed to attach video", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not upload video"))
		return
	}

	log.Info("about video uploaded", slog.String("url", url))
	resp := response.OK("Video uploaded successfully")
	resp.Data = map[string]any{
		"video": url,
		"url":   url,
	}
	render.JSON(w, r, resp)
}
