package models

// EnrollmentStatus is the requested enrollment state for one learner.
type EnrollmentStatus string

// Allowed enrollment statuses.
const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusSuspended EnrollmentStatus = "suspended"
	EnrollmentStatusCanceled  EnrollmentStatus = "canceled"
)

// Per-student result tags recorded alongside plain statuses in the batch
// result map.
const (
	ResultDuplicated    = "duplicated"
	ResultInvalidStatus = "invalid-status"
	ResultInternalError = "internal-error"
)

// EnrollmentSubmission is the normalized form of one request element. The
// validation tags drive per-item classification in the batch processor.
type EnrollmentSubmission struct {
	StudentKey string           `json:"student_key" validate:"required,max=255"`
	Status     EnrollmentStatus `json:"status" validate:"required,oneof=enrolled pending suspended canceled"`
}
