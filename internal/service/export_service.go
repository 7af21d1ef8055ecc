package service

import (
	"fmt"
	"sort"

	"github.com/g-guevara/ramos-api/internal/models"
	"github.com/g-guevara/ramos-api/internal/schedule"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
	"github.com/g-guevara/ramos-api/pkg/export"
)

var exportHeaders = []string{"Day", "Start", "End", "Code", "Course", "Section", "Professor", "Conflict"}

// ExportResult is a rendered document ready for download.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders annotated schedule events into downloadable CSV or
// PDF documents.
type ExportService struct {
	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewExportService constructs the export service.
func NewExportService() *ExportService {
	return &ExportService{csv: export.NewCSVExporter(), pdf: export.NewPDFExporter()}
}

// Render produces the requested document. Events are emitted in grid order:
// day column first, then start time, then course code.
func (s *ExportService) Render(events []models.ScheduleEvent, format, title string) (*ExportResult, error) {
	dataset := buildDataset(events)

	switch format {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "schedule.csv"}, nil
	case "pdf":
		if title == "" {
			title = "Horario Semanal"
		}
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "schedule.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func buildDataset(events []models.ScheduleEvent) export.Dataset {
	ordered := make([]models.ScheduleEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := dayIndex(ordered[i].Day), dayIndex(ordered[j].Day)
		if di != dj {
			return di < dj
		}
		si, _ := schedule.TimeToMinutes(ordered[i].StartTime)
		sj, _ := schedule.TimeToMinutes(ordered[j].StartTime)
		if si != sj {
			return si < sj
		}
		return ordered[i].CourseCode < ordered[j].CourseCode
	})

	dataset := export.Dataset{Headers: exportHeaders}
	for _, event := range ordered {
		conflict := ""
		if event.HasConflict {
			conflict = "yes"
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Day":       event.Day,
			"Start":     event.StartTime,
			"End":       event.EndTime,
			"Code":      event.CourseCode,
			"Course":    event.CourseName,
			"Section":   event.Section,
			"Professor": event.Professor,
			"Conflict":  conflict,
		})
		dataset.Highlights = append(dataset.Highlights, event.HasConflict)
	}
	return dataset
}

func dayIndex(day string) int {
	for i, name := range schedule.Days {
		if name == day {
			return i
		}
	}
	return len(schedule.Days)
}
