package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
	"github.com/noah-isme/registrar-mock-api/pkg/export"
)

// Export formats supported by the roster endpoint.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// RosterDocument is a rendered course-run roster.
type RosterDocument struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders a program's course-run roster for download.
type ExportService struct {
	programs *ProgramService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(programs *ProgramService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		programs: programs,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// CourseRoster renders the program's course runs in the requested format. The
// same 404/403 gates apply as on the JSON course listing.
func (s *ExportService) CourseRoster(ctx context.Context, programKey, format string) (*RosterDocument, error) {
	program, err := s.programs.Get(ctx, programKey)
	if err != nil {
		return nil, err
	}
	runs, err := s.programs.ListCourseRuns(ctx, programKey)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"course_key", "course_title", "course_url"},
		Rows:    make([]map[string]string, 0, len(runs)),
	}
	for _, run := range runs {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"course_key":   run.CourseKey,
			"course_title": run.CourseTitle,
			"course_url":   run.CourseURL,
		})
	}

	switch format {
	case "", ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv roster")
		}
		return &RosterDocument{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s-courses.csv", programKey),
		}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, program.ProgramTitle)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf roster")
		}
		return &RosterDocument{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s-courses.pdf", programKey),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown export format")
	}
}
