// Package travel предоставляет маршруты контент-бекенда.
package travel

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	aboutget "github.com/magabrotheeeer/travel-backend/internal/http/handlers/about/get"
	aboutupdate "github.com/magabrotheeeer/travel-backend/internal/http/handlers/about/update"
	aboutvideo "github.com/magabrotheeeer/travel-backend/internal/http/handlers/about/uploadvideo"
	"github.com/magabrotheeeer/travel-backend/internal/http/handlers/auth/login"
	enquirycreate "github.com/magabrotheeeer/travel-backend/internal/http/handlers/enquiry/create"
	enquiryexport "github.com/magabrotheeeer/travel-backend/internal/http/handlers/enquiry/export"
	enquirylist "github.com/magabrotheeeer/travel-backend/internal/http/handlers/enquiry/list"
	enquiryremove "github.com/magabrotheeeer/travel-backend/internal/http/handlers/enquiry/remove"
	imagelist "github.com/magabrotheeeer/travel-backend/internal/http/handlers/homeimage/list"
	imageremove "github.com/magabrotheeeer/travel-backend/internal/http/handlers/homeimage/remove"
	imageupload "github.com/magabrotheeeer/travel-backend/internal/http/handlers/homeimage/upload"
	packcreate "github.com/magabrotheeeer/travel-backend/internal/http/handlers/pack/create"
	packlist "github.com/magabrotheeeer/travel-backend/internal/http/handlers/pack/list"
	packremove "github.com/magabrotheeeer/travel-backend/internal/http/handlers/pack/remove"
	packupdate "github.com/magabrotheeeer/travel-backend/internal/http/handlers/pack/update"
	packimage "github.com/magabrotheeeer/travel-backend/internal/http/handlers/pack/uploadimage"
	usercreate "github.com/magabrotheeeer/travel-backend/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/travel-backend/internal/http/handlers/user/list"
	userremove "github.com/magabrotheeeer/travel-backend/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/travel-backend/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/travel-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-backend/internal/http/response"
	"github.com/magabrotheeeer/travel-backend/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Чтение контента и создание заявок открыты публично, все изменяющие
// операции требуют JWT. Загруженные файлы раздаются как статика из /uploads.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *services.AuthService,
	contentService *services.ContentService,
	userService *services.UserService,
	aboutService *services.AboutService,
	uploadDir string,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Msg("Resource not found"))
	})

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/packages", packlist.New(logger, contentService, services.StandardPackages).ServeHTTP)
		r.Get("/high-selling-packages", packlist.New(logger, contentService, services.HighSellingPackages).ServeHTTP)
		r.Get("/home-images", imagelist.New(logger, contentService).ServeHTTP)
		r.Get("/about", aboutget.New(logger, aboutService).ServeHTTP)

		// Публичная форма заявок с ограничением частоты
		r.With(middlewarectx.RateLimitMiddleware(logger)).
			Post("/enquiries", enquirycreate.New(logger, contentService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))

			r.Get("/enquiries", enquirylist.New(logger, contentService).ServeHTTP)
			r.Get("/enquiries/export", enquiryexport.New(logger, contentService).ServeHTTP)
			r.Delete("/enquiries/{id}", enquiryremove.New(logger, contentService).ServeHTTP)

			r.Post("/packages", packcreate.New(logger, contentService, services.StandardPackages).ServeHTTP)
			r.Put("/packages/{id}", packupdate.New(logger, contentService, services.StandardPackages).ServeHTTP)
			r.Delete("/packages/{id}", packremove.New(logger, contentService, services.StandardPackages).ServeHTTP)
			r.Post("/packages/{id}/image", packimage.New(logger, contentService, services.StandardPackages).ServeHTTP)

			r.Post("/high-selling-packages", packcreate.New(logger, contentService, services.HighSellingPackages).ServeHTTP)
			r.Put("/high-selling-packages/{id}", packupdate.New(logger, contentService, services.HighSellingPackages).ServeHTTP)
			r.Delete("/high-selling-packages/{id}", packremove.New(logger, contentService, services.HighSellingPackages).ServeHTTP)
			r.Post("/high-selling-packages/{id}/image", packimage.New(logger, contentService, services.HighSellingPackages).ServeHTTP)

			r.Post("/home-images", imageupload.New(logger, contentService).ServeHTTP)
			r.Delete("/home-images/{id}", imageremove.New(logger, contentService).ServeHTTP)

			r.Put("/about", aboutupdate.New(logger, aboutService).ServeHTTP)
			r.Post("/about/video", aboutvideo.New(logger, aboutService).ServeHTTP)

			r.Get("/users", userlist.New(logger, userService).ServeHTTP)
			r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
			r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
		})
	})

	// Раздача загруженных файлов
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
