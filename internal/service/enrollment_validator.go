package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/registrar-mock-api/internal/models"
)

// submissionVerdict classifies one raw enrollment record.
type submissionVerdict int

const (
	submissionOK submissionVerdict = iota
	// submissionMissingStudentKey aborts the whole batch.
	submissionMissingStudentKey
	// submissionInvalidStatus is recorded inline as "invalid-status".
	submissionInvalidStatus
	// submissionInternalError is recorded inline as "internal-error".
	submissionInternalError
)

// validateSubmission checks one untyped request element and normalizes it.
// A student key is usable only when present as a non-empty JSON string; its
// absence dominates every other failure because the result map cannot be keyed
// without it.
func validateSubmission(v *validator.Validate, item map[string]interface{}) (models.EnrollmentSubmission, submissionVerdict) {
	studentKey, _ := item["student_key"].(string)
	status, _ := item["status"].(string)

	sub := models.EnrollmentSubmission{
		StudentKey: studentKey,
		Status:     models.EnrollmentStatus(status),
	}

	err := v.Struct(sub)
	if err == nil {
		return sub, submissionOK
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return sub, submissionInternalError
	}

	verdict := submissionInternalError
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "StudentKey":
			if fe.Tag() == "required" {
				return sub, submissionMissingStudentKey
			}
		case "Status":
			verdict = submissionInvalidStatus
		}
	}
	return sub, verdict
}
