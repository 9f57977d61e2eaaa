// Package travel собирает приложение контент-бекенда: файловые хранилища,
// сервисы бизнес-уровня, HTTP-маршруты и жизненный цикл сервера.
// Все зависимости конструируются один раз при старте и передаются
// обработчикам явно, без глобального состояния.
package travel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/travel-backend/internal/config"
	"github.com/magabrotheeeer/travel-backend/internal/export"
	jwtlib "github.com/magabrotheeeer/travel-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-backend/internal/services"
	"github.com/magabrotheeeer/travel-backend/internal/storage"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New конструирует приложение из конфигурации: хранилища, сервисы,
// маршрутизатор и HTTP-сервер.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	documentStore := storage.NewDocumentStore(cfg.DataFile)
	userStore := storage.NewUserStore(cfg.UsersFile)
	aboutStore := storage.NewAboutStore(cfg.AboutFile)
	fileStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	mirror := export.NewXLSXMirror(cfg.EnquiriesFile)
	jwtMaker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := services.NewAuthService(userStore, jwtMaker, cfg.AdminFallback)
	contentService := services.NewContentService(documentStore, fileStore, mirror)
	userService := services.NewUserService(userStore)
	aboutService := services.NewAboutService(aboutStore, fileStore)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, contentService, userService, aboutService, fileStore.Dir())

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его мягко при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
