package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/registrar-mock-api/internal/service"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
	"github.com/noah-isme/registrar-mock-api/pkg/jobs"
	"github.com/noah-isme/registrar-mock-api/pkg/response"
)

type enrollmentService interface {
	EnrollBatch(ctx context.Context, programKey string, body []byte) (*service.BatchResult, error)
}

type auditEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// EnrollmentHandler exposes the bulk enrollment endpoint. Its wire format
// predates the service-wide envelope: the 200/207 body is the bare result map
// and the 413/422 bodies are literal strings.
type EnrollmentHandler struct {
	enrollments enrollmentService
	audit       auditEnqueuer
	logger      *zap.Logger
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService, audit auditEnqueuer, logger *zap.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentHandler{enrollments: enrollments, audit: audit, logger: logger}
}

// Create godoc
// @Summary Enroll up to 25 students in a program
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param program_key path string true "Program key"
// @Param payload body []models.EnrollmentSubmission true "Enrollment submissions"
// @Success 200 {object} map[string]string
// @Success 207 {object} map[string]string
// @Router /programs/{program_key}/enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	programKey := c.Param("program_key")

	body, err := c.GetRawData()
	if err != nil {
		response.Literal(c, appErrors.ErrMalformedBatch.Status, appErrors.ErrMalformedBatch.Message)
		return
	}

	result, err := h.enrollments.EnrollBatch(c.Request.Context(), programKey, body)
	if err != nil {
		appErr := appErrors.FromError(err)
		switch appErr.Code {
		case appErrors.ErrBatchTooLarge.Code, appErrors.ErrMissingStudentKey.Code, appErrors.ErrMalformedBatch.Code:
			response.Literal(c, appErr.Status, appErr.Message)
		default:
			response.Error(c, err)
		}
		return
	}

	h.enqueueAudit(c, programKey, result)

	status := http.StatusOK
	if result.Partial {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result.Results)
}

// enqueueAudit records the batch outcome on the background queue. The audit
// trail is best effort and never affects the response.
func (h *EnrollmentHandler) enqueueAudit(c *gin.Context, programKey string, result *service.BatchResult) {
	if h.audit == nil {
		return
	}

	outcome := "full"
	if result.Partial {
		outcome = "partial"
	}
	payload := map[string]interface{}{
		"program_key": programKey,
		"students":    len(result.Results),
		"outcome":     outcome,
	}
	if claims := claimsFromContext(c); claims != nil {
		payload["partner_id"] = claims.PartnerID
	}

	job := jobs.Job{ID: uuid.NewString(), Type: "enrollment_batch", Payload: payload}
	if err := h.audit.Enqueue(job); err != nil {
		h.logger.Warn("failed to enqueue enrollment audit", zap.Error(err))
	}
}
