// Package upload реализует HTTP-обработчик загрузки изображения главной страницы.
package upload

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/lib/sl"
	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// Ограничение на размер multipart-формы при разборе, 32 МБ.
const maxUploadMemory = 32 << 20

// Response — структура ответа с созданной записью изображения.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Image   models.Image `json:"image"`
}

// Service описывает интерфейс бизнес-логики добавления изображения.
type Service interface {
	AddHomeImage(originalName string, r io.Reader) (models.Image, error)
}

// Handler управляет HTTP-запросами на загрузку изображений главной страницы.
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
// @Summary Загрузить изображение главной страницы
// @Tags HomeImages
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param file formData file true "Файл изображения"
// @Success 201 {object} Response "Изображение загружено"
// @Failure 400 {object} response.MessageResponse "Файл не передан"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при загрузке"
// @Router /api/home-images [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.homeimage.upload"

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

	image, err := h.service.AddHomeImage(header.Filename, file)
	if err != nil {
		log.Error("failed to add home image", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not upload image"))
		return
	}

	log.Info("home image uploaded", slog.String("id", image.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		Success: true,
		Message: "Image uploaded successfully",
		Image:   image,
	})
}
