// Package update реализует HTTP-обработчик частичного обновления пользователя.
//
// Смена username и email повторно проверяется на уникальность,
// непустой пароль перехэшируется. Непереданные поля не изменяются.
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

// Service описывает интерфейс бизнес-логики обновления пользователя.
type Service interface {
	Update(id string, patch models.PatchUser) (models.PublicUser, error)
}

// Handler управляет HTTP-запросами на обновление пользователей.
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
// @Summary Обновить пользователя
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор пользователя"
// @Param request body models.PatchUser true "Изменяемые поля"
// @Success 200 {object} response.Response "Пользователь обновлён"
// @Failure 400 {object} response.ErrorResponse "Дубликат username или email"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении"
// @Router /api/users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var patch models.PatchUser
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	user, err := h.service.Update(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			log.Error("user not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
		case errors.Is(err, services.ErrUsernameTaken):
			log.Error("username already exists")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Username already exists"))
		case errors.Is(err, services.ErrEmailTaken):
			log.Error("email already exists")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Email already exists"))
		default:
			log.Error("failed to update user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update user"))
		}
		return
	}

	log.Info("user updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(user))
}
