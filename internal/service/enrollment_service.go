package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
)

type programResolver interface {
	ProgramByKey(key string) (*models.Program, bool)
}

// BatchResult is the outcome of one bulk enrollment request.
type BatchResult struct {
	// Results maps student_key to either the requested status or one of the
	// error tags.
	Results map[string]string
	// Partial is true when any entry carries an error tag; the boundary maps
	// it to HTTP 207.
	Partial bool
}

// EnrollmentService processes bulk program enrollment submissions against the
// registry. Nothing is persisted; the result map is the entire outcome.
type EnrollmentService struct {
	registry  programResolver
	maxBatch  int
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(registry programResolver, maxBatch int, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if maxBatch <= 0 {
		maxBatch = 25
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{registry: registry, maxBatch: maxBatch, validator: validate, metrics: metrics, logger: logger}
}

// EnrollBatch runs the bulk enrollment flow for a program over the raw request
// body. Structural failures (unknown program, unreadable organization,
// non-array body, oversized batch, missing student key) return an error and no
// partial results; per-item failures are recorded inline in the result map.
func (s *EnrollmentService) EnrollBatch(ctx context.Context, programKey string, body []byte) (*BatchResult, error) {
	program, ok := s.registry.ProgramByKey(programKey)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "program not found")
	}
	if !program.MetadataReadable() {
		return nil, appErrors.ErrForbidden
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, appErrors.ErrMalformedBatch
	}

	// The size cap is enforced before any per-item validation.
	if len(items) > s.maxBatch {
		s.recordBatch("too_large")
		return nil, appErrors.ErrBatchTooLarge
	}

	results := make(map[string]string, len(items))
	partial := false

	for _, raw := range items {
		var item map[string]interface{}
		if err := json.Unmarshal(raw, &item); err != nil {
			// A non-object element carries no student key to record a result
			// under, so the whole batch aborts like the missing-key case.
			s.recordBatch("aborted")
			return nil, appErrors.ErrMissingStudentKey
		}

		sub, verdict := validateSubmission(s.validator, item)
		switch verdict {
		case submissionOK:
			if _, seen := results[sub.StudentKey]; seen {
				// The earlier entry for this key is discarded, matching the
				// legacy behaviour partners already depend on.
				results[sub.StudentKey] = models.ResultDuplicated
				partial = true
				s.recordSubmission(models.ResultDuplicated)
			} else {
				results[sub.StudentKey] = string(sub.Status)
				s.recordSubmission(string(sub.Status))
			}
		case submissionInvalidStatus:
			results[sub.StudentKey] = models.ResultInvalidStatus
			partial = true
			s.recordSubmission(models.ResultInvalidStatus)
		case submissionMissingStudentKey:
			// Unlike other per-item failures this aborts mid-batch and
			// discards every partial result accumulated so far.
			s.recordBatch("aborted")
			return nil, appErrors.ErrMissingStudentKey
		default:
			results[sub.StudentKey] = models.ResultInternalError
			partial = true
			s.recordSubmission(models.ResultInternalError)
		}
	}

	if partial {
		s.recordBatch("partial")
	} else {
		s.recordBatch("full")
	}

	return &BatchResult{Results: results, Partial: partial}, nil
}

func (s *EnrollmentService) recordSubmission(result string) {
	if s.metrics != nil {
		s.metrics.RecordSubmission(result)
	}
}

func (s *EnrollmentService) recordBatch(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordBatch(outcome)
	}
}
