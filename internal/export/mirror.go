// Package export реализует best-effort зеркало коллекции заявок в виде
// xlsx-файла для офлайн-просмотра. Зеркало — вторичное представление:
// ошибки записи не должны приводить к отказу запроса, если основная запись
// в JSON-документ уже прошла; сервисный слой понижает их до предупреждений.
package export

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/magabrotheeeer/travel-backend/internal/models"
)

// ErrNotAvailable возвращается из Resolve, когда файла нет и заявок,
// из которых его можно перестроить, тоже нет.
var ErrNotAvailable = errors.New("enquiries export is not available")

// Mirror описывает контракт зеркала заявок. Сервисный слой зависит от
// интерфейса, чтобы зеркало оставалось заменяемым компонентом.
type Mirror interface {
	// Append дописывает одну заявку в конец листа, создавая файл при необходимости.
	Append(enquiry models.Enquiry) error
	// Rebuild перестраивает файл с нуля по текущему списку заявок.
	// Используется после удаления, чтобы не искать и не удалять одну строку.
	Rebuild(enquiries []models.Enquiry) error
	// Resolve возвращает путь к файлу для скачивания, перестраивая его,
	// если файл отсутствует, а заявки есть.
	Resolve(enquiries []models.Enquiry) (string, error)
}

const sheetName = "Enquiries"

var header = []any{"ID", "Name", "Email", "Contact", "Package", "Message", "Timestamp"}

// XLSXMirror реализует Mirror поверх одного xlsx-файла на локальном диске.
type XLSXMirror struct {
	path string
	mu   sync.Mutex
}

// NewXLSXMirror создает зеркало, пишущее в файл по указанному пути.
func NewXLSXMirror(path string) *XLSXMirror {
	return &XLSXMirror{path: path}
}

// Append дописывает строку с заявкой, создавая файл с заголовком при необходимости.
func (m *XLSXMirror) Append(enquiry models.Enquiry) error {
	const op = "export.Append"
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.path); err != nil {
		file := newWorkbook()
		defer closeWorkbook(file)
		if err := writeRow(file, 2, enquiry); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := file.SaveAs(m.path); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	file, err := excelize.OpenFile(m.path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeWorkbook(file)

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := writeRow(file, len(rows)+1, enquiry); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := file.Save(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Rebuild перезаписывает файл целиком: заголовок и по строке на заявку.
func (m *XLSXMirror) Rebuild(enquiries []models.Enquiry) error {
	const op = "export.Rebuild"
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rebuild(op, enquiries)
}

func (m *XLSXMirror) rebuild(op string, enquiries []models.Enquiry) error {
	file := newWorkbook()
	defer closeWorkbook(file)

	for i, enquiry := range enquiries {
		if err := writeRow(file, i+2, enquiry); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := file.SaveAs(m.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Resolve возвращает путь к файлу для скачивания. Отсутствующий файл
// перестраивается из текущих заявок; если заявок нет — ErrNotAvailable.
func (m *XLSXMirror) Resolve(enquiries []models.Enquiry) (string, error) {
	const op = "export.Resolve"
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.path); err == nil {
		return m.path, nil
	}
	if len(enquiries) == 0 {
		return "", fmt.Errorf("%s: %w", op, ErrNotAvailable)
	}
	if err := m.rebuild(op, enquiries); err != nil {
		return "", err
	}
	return m.path, nil
}

func newWorkbook() *excelize.File {
	file := excelize.NewFile()
	// Новый workbook создается с листом Sheet1, переименовываем его.
	_ = file.SetSheetName("Sheet1", sheetName)
	_ = file.SetSheetRow(sheetName, "A1", &header)
	return file
}

func writeRow(file *excelize.File, rowIndex int, enquiry models.Enquiry) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return err
	}
	row := []any{
		enquiry.ID,
		enquiry.Name,
		enquiry.Email,
		enquiry.Contact,
		enquiry.Package,
		enquiry.Message,
		enquiry.Timestamp.Format(time.RFC3339),
	}
	return file.SetSheetRow(sheetName, cell, &row)
}

func closeWorkbook(file *excelize.File) {
	_ = file.Close()
}
