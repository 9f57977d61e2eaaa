package services

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-backend/internal/export"
	"github.com/magabrotheeeer/travel-backend/internal/models"
	"github.com/magabrotheeeer/travel-backend/internal/storage"
)

// PackageKind выбирает одну из двух коллекций пакетов внутри документа.
type PackageKind string

const (
	// StandardPackages — коллекция всех туристических пакетов.
	StandardPackages PackageKind = "packages"
	// HighSellingPackages — коллекция популярных пакетов;
	// поля duration и includes в ней не используются.
	HighSellingPackages PackageKind = "high_selling_packages"
)

// ContentService реализует операции над четырьмя коллекциями документа.
// Каждый вызов API — ровно один цикл load-modify-save хранилища документа.
// Зеркало заявок — best-effort: его ошибки понижаются до предупреждения,
// когда запись в JSON-документ уже прошла.
type ContentService struct {
	store  *storage.DocumentStore
	files  *storage.FileStore
	mirror export.Mirror
}

// NewContentService создает новый экземпляр ContentService.
func NewContentService(store *storage.DocumentStore, files *storage.FileStore, mirror export.Mirror) *ContentService {
	return &ContentService{
		store:  store,
		files:  files,
		mirror: mirror,
	}
}

func packagesFor(doc *models.Document, kind PackageKind) *[]models.Package {
	if kind == HighSellingPackages {
		return &doc.HighSellingPackages
	}
	return &doc.Packages
}

// ListPackages возвращает коллекцию пакетов в порядке добавления.
func (s *ContentService) ListPackages(kind PackageKind) []models.Package {
	return *packagesFor(s.store.Load(), kind)
}

// CreatePackage добавляет пакет в выбранную коллекцию и возвращает созданную запись.
func (s *ContentService) CreatePackage(kind PackageKind, req models.DummyPackage) (models.Package, error) {
	pkg := models.Package{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if kind == StandardPackages {
		pkg.Duration = req.Duration
		pkg.Includes = req.Includes
	}

	err := s.store.Update(func(doc *models.Document) error {
		list := packagesFor(doc, kind)
		*list = append(*list, pkg)
		return nil
	})
	if err != nil {
		return models.Package{}, err
	}
	return pkg, nil
}

// UpdatePackage сливает непустые поля patch поверх существующей записи.
// Поля, отсутствующие в patch, сохраняют прежние значения.
// Для high_selling_packages duration и includes игнорируются.
// Возвращает ErrNotFound, если пакета с таким id нет.
func (s *ContentService) UpdatePackage(kind PackageKind, id string, patch models.PatchPackage) error {
	return s.store.Update(func(doc *models.Document) error {
		list := packagesFor(doc, kind)
		for i := range *list {
			pkg := &(*list)[i]
			if pkg.ID != id {
				continue
			}
			if patch.Name != nil {
				pkg.Name = *patch.Name
			}
			if patch.Price != nil {
				pkg.Price = *patch.Price
			}
			if patch.Description != nil {
				pkg.Description = *patch.Description
			}
			if kind == StandardPackages {
				if patch.Duration != nil {
					pkg.Duration = *patch.Duration
				}
				if patch.Includes != nil {
					pkg.Includes = *patch.Includes
				}
			}
			return nil
		}
		return ErrNotFound
	})
}

// DeletePackage удаляет пакет по id. Возвращает ErrNotFound, если его нет.
func (s *ContentService) DeletePackage(kind PackageKind, id string) error {
	return s.store.Update(func(doc *models.Document) error {
		list := packagesFor(doc, kind)
		filtered := make([]models.Package, 0, len(*list))
		for _, pkg := range *list {
			if pkg.ID != id {
				filtered = append(filtered, pkg)
			}
		}
		if len(filtered) == len(*list) {
			return ErrNotFound
		}
		*list = filtered
		return nil
	})
}

// AttachPackageImage сохраняет загруженный файл и прописывает его URL в поле
// image пакета. Возвращает ErrNotFound, если пакета с таким id нет;
// сохранённый файл в этом случае удаляется, чтобы не плодить сироты.
func (s *ContentService) AttachPackageImage(kind PackageKind, id, originalName string, r io.Reader) (string, error) {
	const op = "services.ContentService.AttachPackageImage"

	filename, err := s.files.Save(originalName, r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	url := "/uploads/" + filename

	err = s.store.Update(func(doc *models.Document) error {
		list := packagesFor(doc, kind)
		for i := range *list {
			if (*list)[i].ID == id {
				(*list)[i].Image = &url
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		s.files.Remove(filename)
		return "", err
	}
	return url, nil
}

// ListHomeImages возвращает изображения главной страницы в порядке загрузки.
func (s *ContentService) ListHomeImages() []models.Image {
	return s.store.Load().HomeImages
}

// AddHomeImage сохраняет загруженный файл и добавляет запись в home_images.
func (s *ContentService) AddHomeImage(originalName string, r io.Reader) (models.Image, error) {
	const op = "services.ContentService.AddHomeImage"

	filename, err := s.files.Save(originalName, r)
	if err != nil {
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}
	image := models.Image{
		ID:         uuid.NewString(),
		URL:        "/uploads/" + filename,
		Filename:   filename,
		UploadedAt: time.Now(),
	}

	err = s.store.Update(func(doc *models.Document) error {
		doc.HomeImages = append(doc.HomeImages, image)
		return nil
	})
	if err != nil {
		s.files.Remove(filename)
		return models.Image{}, err
	}
	return image, nil
}

// DeleteHomeImage удаляет запись и best-effort удаляет файл с диска.
// Возвращает ErrNotFound, если записи с таким id нет.
func (s *ContentService) DeleteHomeImage(id string) error {
	var filename string
	err := s.store.Update(func(doc *models.Document) error {
		filtered := make([]models.Image, 0, len(doc.HomeImages))
		for _, img := range doc.HomeImages {
			if img.ID == id {
				filename = img.Filename
				continue
			}
			filtered = append(filtered, img)
		}
		if len(filtered) == len(doc.HomeImages) {
			return ErrNotFound
		}
		doc.HomeImages = filtered
		return nil
	})
	if err != nil {
		return err
	}
	s.files.Remove(filename)
	return nil
}

// ListEnquiries возвращает заявки в порядке поступления.
func (s *ContentService) ListEnquiries() []models.Enquiry {
	return s.store.Load().Enquiries
}

// CreateEnquiry добавляет заявку и дописывает её в xlsx-зеркало.
// Пустое сообщение при заданном пакете заменяется на
// "Package enquiry for {package}". Ошибка зеркала возвращается как
// предупреждение, а не как ошибка: заявка в JSON уже сохранена.
func (s *ContentService) CreateEnquiry(req models.DummyEnquiry) (models.Enquiry, string, error) {
	message := req.Message
	if message == "" && req.Package != "" {
		message = "Package enquiry for " + req.Package
	}
	enquiry := models.Enquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Package:   req.Package,
		Message:   message,
		Timestamp: time.Now(),
	}

	err := s.store.Update(func(doc *models.Document) error {
		doc.Enquiries = append(doc.Enquiries, enquiry)
		return nil
	})
	if err != nil {
		return models.Enquiry{}, "", err
	}

	var warning string
	if err := s.mirror.Append(enquiry); err != nil {
		warning = "enquiry saved to JSON only: export mirror update failed"
	}
	return enquiry, warning, nil
}

// DeleteEnquiry удаляет заявку и перестраивает xlsx-зеркало по оставшимся.
// Возвращает ErrNotFound, если заявки с таким id нет.
func (s *ContentService) DeleteEnquiry(id string) (string, error) {
	var remaining []models.Enquiry
	err := s.store.Update(func(doc *models.Document) error {
		filtered := make([]models.Enquiry, 0, len(doc.Enquiries))
		for _, enquiry := range doc.Enquiries {
			if enquiry.ID != id {
				filtered = append(filtered, enquiry)
			}
		}
		if len(filtered) == len(doc.Enquiries) {
			return ErrNotFound
		}
		doc.Enquiries = filtered
		remaining = filtered
		return nil
	})
	if err != nil {
		return "", err
	}

	var warning string
	if err := s.mirror.Rebuild(remaining); err != nil {
		warning = "enquiry removed from JSON only: export mirror rebuild failed"
	}
	return warning, nil
}

// ExportEnquiries возвращает путь к xlsx-файлу для скачивания,
// перестраивая его при отсутствии. Возвращает export.ErrNotAvailable,
// когда заявок нет и файла тоже нет.
func (s *ContentService) ExportEnquiries() (string, error) {
	return s.mirror.Resolve(s.store.Load().Enquiries)
}
