package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/registrar-mock-api/internal/dto"
	"github.com/noah-isme/registrar-mock-api/internal/service"
	"github.com/noah-isme/registrar-mock-api/pkg/response"
)

type programService interface {
	List(ctx context.Context, orgKey string) ([]dto.ProgramResponse, error)
	Get(ctx context.Context, programKey string) (*dto.ProgramResponse, error)
	ListCourseRuns(ctx context.Context, programKey string) ([]dto.CourseRunResponse, error)
}

type rosterExporter interface {
	CourseRoster(ctx context.Context, programKey, format string) (*service.RosterDocument, error)
}

// ProgramHandler exposes the read-only program endpoints.
type ProgramHandler struct {
	programs programService
	exports  rosterExporter
}

// NewProgramHandler constructs ProgramHandler.
func NewProgramHandler(programs programService, exports rosterExporter) *ProgramHandler {
	return &ProgramHandler{programs: programs, exports: exports}
}

// List godoc
// @Summary List programs of an organization
// @Tags Programs
// @Produce json
// @Param org query string true "Organization key"
// @Success 200 {object} response.Envelope
// @Router /programs [get]
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programs.List(c.Request.Context(), c.Query("org"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, programs)
}

// Retrieve godoc
// @Summary Retrieve a single program
// @Tags Programs
// @Produce json
// @Param program_key path string true "Program key"
// @Success 200 {object} response.Envelope
// @Router /programs/{program_key} [get]
func (h *ProgramHandler) Retrieve(c *gin.Context) {
	program, err := h.programs.Get(c.Request.Context(), c.Param("program_key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, program)
}

// ListCourses godoc
// @Summary List course runs in a program
// @Tags Programs
// @Produce json
// @Param program_key path string true "Program key"
// @Success 200 {object} response.Envelope
// @Router /programs/{program_key}/courses [get]
func (h *ProgramHandler) ListCourses(c *gin.Context) {
	runs, err := h.programs.ListCourseRuns(c.Request.Context(), c.Param("program_key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, runs)
}

// ExportCourses godoc
// @Summary Download a program's course-run roster
// @Tags Programs
// @Produce text/csv
// @Param program_key path string true "Program key"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /programs/{program_key}/courses/export [get]
func (h *ProgramHandler) ExportCourses(c *gin.Context) {
	doc, err := h.exports.CourseRoster(c.Request.Context(), c.Param("program_key"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
