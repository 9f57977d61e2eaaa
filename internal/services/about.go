package services

import (
	"fmt"
	"io"
	"time"

	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/storage"
)

// AboutService управляет единственным документом страницы «О нас».
type AboutService struct {
	store *storage.AboutStore
	files *storage.FileStore
}

// NewAboutService создает новый экземпляр AboutService.
func NewAboutService(store *storage.AboutStore, files *storage.FileStore) *AboutService {
	return &AboutService{
		store: store,
		files: files,
	}
}

// Get возвращает текущий документ «О нас».
func (s *AboutService) Get() models.About {
	return s.store.Load()
}

// Replace заменяет документ целиком и проставляет updated_at.
func (s *AboutService) Replace(req models.DummyAbout) (models.About, error) {
	now := time.Now()
	about := models.About{
		Content:   req.Content,
		Video:     req.Video,
		UpdatedAt: &now,
	}
	if err := s.store.Save(about); err != nil {
		return models.About{}, err
	}
	return about, nil
}

// AttachVideo сохраняет загруженный файл и прописывает его URL в поле video.
func (s *AboutService) AttachVideo(originalName string, r io.Reader) (string, error) {
	const op = "services.AboutService.AttachVideo"

	filename, err := s.files.Save(originalName, r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	url := "/uploads/" + filename

	err = s.store.Update(func(about *models.About) error {
		now := time.Now()
		about.Video = url
		about.UpdatedAt = &now
		return nil
	})
	if err != nil {
		s.files.Remove(filename)
		return "", err
	}
	return url, nil
}
