package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
)

type mockProgramResolver struct {
	programs map[string]*models.Program
}

func (m *mockProgramResolver) ProgramByKey(key string) (*models.Program, bool) {
	p, ok := m.programs[key]
	return p, ok
}

func newEnrollmentFixture() *mockProgramResolver {
	readable := &models.Organization{Key: "brighthaven", MetadataReadable: true}
	hidden := &models.Organization{Key: "veritas-college", MetadataReadable: false}
	return &mockProgramResolver{programs: map[string]*models.Program{
		"bh-mba":             {Key: "bh-mba", ManagingOrganization: readable},
		"vc-masters-english": {Key: "vc-masters-english", ManagingOrganization: hidden},
	}}
}

func newTestEnrollmentService() *EnrollmentService {
	return NewEnrollmentService(newEnrollmentFixture(), 25, nil, nil, nil)
}

func marshalBatch(t *testing.T, batch interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(batch)
	require.NoError(t, err)
	return raw
}

func TestEnrollBatchFullSuccess(t *testing.T) {
	svc := newTestEnrollmentService()

	body := marshalBatch(t, []map[string]string{
		{"student_key": "alice", "status": "enrolled"},
		{"student_key": "bob", "status": "pending"},
		{"student_key": "carol", "status": "canceled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.NoError(t, err)
	assert.False(t, result.Partial)
	assert.Equal(t, map[string]string{
		"alice": "enrolled",
		"bob":   "pending",
		"carol": "canceled",
	}, result.Results)
}

func TestEnrollBatchUnknownProgram(t *testing.T) {
	svc := newTestEnrollmentService()

	result, err := svc.EnrollBatch(context.Background(), "no-such-program", []byte(`[]`))
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestEnrollBatchUnreadableOrganization(t *testing.T) {
	svc := newTestEnrollmentService()

	result, err := svc.EnrollBatch(context.Background(), "vc-masters-english", []byte(`[]`))
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}

func TestEnrollBatchRejectsNonArrayBody(t *testing.T) {
	svc := newTestEnrollmentService()

	for _, body := range []string{
		`{"student_key":"alice","status":"enrolled"}`,
		`"alice"`,
		`not json`,
	} {
		result, err := svc.EnrollBatch(context.Background(), "bh-mba", []byte(body))
		require.Nil(t, result, "body %s", body)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrMalformedBatch.Code, appErr.Code, "body %s", body)
	}
}

func TestEnrollBatchTooLarge(t *testing.T) {
	svc := newTestEnrollmentService()

	batch := make([]map[string]string, 26)
	for i := range batch {
		batch[i] = map[string]string{"student_key": fmt.Sprintf("student-%d", i), "status": "enrolled"}
	}

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", marshalBatch(t, batch))
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrBatchTooLarge.Code, appErr.Code)
	assert.Equal(t, "enrollement limit 25", appErr.Message)
}

func TestEnrollBatchSizeCapBeforeItemValidation(t *testing.T) {
	svc := newTestEnrollmentService()

	// 26 invalid items must still yield 413, not a per-item failure.
	batch := make([]map[string]string, 26)
	for i := range batch {
		batch[i] = map[string]string{"status": "bogus"}
	}

	_, err := svc.EnrollBatch(context.Background(), "bh-mba", marshalBatch(t, batch))
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrBatchTooLarge.Code, appErr.Code)
}

func TestEnrollBatchDuplicateStudentKey(t *testing.T) {
	svc := newTestEnrollmentService()

	body := marshalBatch(t, []map[string]string{
		{"student_key": "a", "status": "enrolled"},
		{"student_key": "a", "status": "enrolled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Equal(t, map[string]string{"a": "duplicated"}, result.Results)
}

func TestEnrollBatchDuplicateAfterInvalidStatus(t *testing.T) {
	svc := newTestEnrollmentService()

	// A valid item whose key was already recorded with an error tag is still
	// marked duplicated; the error tag is discarded.
	body := marshalBatch(t, []map[string]string{
		{"student_key": "a", "status": "bogus"},
		{"student_key": "a", "status": "enrolled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Equal(t, map[string]string{"a": "duplicated"}, result.Results)
}

func TestEnrollBatchInvalidStatus(t *testing.T) {
	svc := newTestEnrollmentService()

	body := marshalBatch(t, []map[string]string{
		{"student_key": "b", "status": "bogus"},
		{"student_key": "c", "status": "enrolled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Equal(t, map[string]string{
		"b": "invalid-status",
		"c": "enrolled",
	}, result.Results)
}

func TestEnrollBatchMissingStatus(t *testing.T) {
	svc := newTestEnrollmentService()

	body := marshalBatch(t, []map[string]string{
		{"student_key": "b"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Equal(t, map[string]string{"b": "invalid-status"}, result.Results)
}

func TestEnrollBatchMissingStudentKeyAborts(t *testing.T) {
	svc := newTestEnrollmentService()

	// Earlier valid items are discarded; the request fails wholesale.
	body := marshalBatch(t, []interface{}{
		map[string]string{"student_key": "alice", "status": "enrolled"},
		map[string]string{"status": "enrolled"},
		map[string]string{"student_key": "bob", "status": "enrolled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMissingStudentKey.Code, appErr.Code)
	assert.Equal(t, "student_key required", appErr.Message)
}

func TestEnrollBatchEmptyStudentKeyAborts(t *testing.T) {
	svc := newTestEnrollmentService()

	body := marshalBatch(t, []map[string]string{
		{"student_key": "", "status": "enrolled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMissingStudentKey.Code, appErr.Code)
}

func TestEnrollBatchNonStringStudentKeyAborts(t *testing.T) {
	svc := newTestEnrollmentService()

	body := []byte(`[{"student_key": 42, "status": "enrolled"}]`)

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMissingStudentKey.Code, appErr.Code)
}

func TestEnrollBatchNonObjectElementAborts(t *testing.T) {
	svc := newTestEnrollmentService()

	body := []byte(`["alice"]`)

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.Nil(t, result)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrMissingStudentKey.Code, appErr.Code)
}

func TestEnrollBatchOverlongStudentKeyRecordsInternalError(t *testing.T) {
	svc := newTestEnrollmentService()

	long := strings.Repeat("x", 300)
	body := marshalBatch(t, []map[string]string{
		{"student_key": long, "status": "enrolled"},
		{"student_key": "ok", "status": "enrolled"},
	})

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", body)
	require.NoError(t, err)
	assert.True(t, result.Partial)
	assert.Equal(t, "internal-error", result.Results[long])
	assert.Equal(t, "enrolled", result.Results["ok"])
}

func TestEnrollBatchEmptyBatch(t *testing.T) {
	svc := newTestEnrollmentService()

	result, err := svc.EnrollBatch(context.Background(), "bh-mba", []byte(`[]`))
	require.NoError(t, err)
	assert.False(t, result.Partial)
	assert.Empty(t, result.Results)
}
