package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/registrar-mock-api/internal/dto"
	"github.com/noah-isme/registrar-mock-api/internal/repository"
	"github.com/noah-isme/registrar-mock-api/internal/service"
	"github.com/noah-isme/registrar-mock-api/pkg/response"
)

func newProgramTestHandler(t *testing.T) *ProgramHandler {
	t.Helper()
	store, err := repository.NewFixtureStore("")
	require.NoError(t, err)
	programs := service.NewProgramService(store, nil, nil)
	exports := service.NewExportService(programs, nil)
	return NewProgramHandler(programs, exports)
}

func getRequest(t *testing.T, target string, params gin.Params, fn gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = params
	fn(c)
	return w
}

func TestProgramHandlerListRequiresOrg(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs", nil, h.List)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProgramHandlerListUnknownOrg(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs?org=unknown_org", nil, h.List)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProgramHandlerListUnreadableOrg(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs?org=veritas-college", nil, h.List)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProgramHandlerList(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs?org=brighthaven", nil, h.List)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []dto.ProgramResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "bh-masters-data-science", envelope.Data[0].ProgramKey)
	assert.Equal(t, "bh-mba", envelope.Data[1].ProgramKey)
}

func TestProgramHandlerRetrieve(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs/bh-mba", gin.Params{{Key: "program_key", Value: "bh-mba"}}, h.Retrieve)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.ProgramResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Master of Business Administration", envelope.Data.ProgramTitle)
}

func TestProgramHandlerRetrieveNotFoundAndForbidden(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs/missing", gin.Params{{Key: "program_key", Value: "missing"}}, h.Retrieve)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)

	w = getRequest(t, "/programs/vc-masters-english", gin.Params{{Key: "program_key", Value: "vc-masters-english"}}, h.Retrieve)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProgramHandlerListCourses(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs/bh-masters-data-science/courses", gin.Params{{Key: "program_key", Value: "bh-masters-data-science"}}, h.ListCourses)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []dto.CourseRunResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "course-v1:BrightHaven+DS500+Fall2026", envelope.Data[0].CourseKey)
}

func TestProgramHandlerExportCourses(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs/bh-mba/courses/export?format=csv", gin.Params{{Key: "program_key", Value: "bh-mba"}}, h.ExportCourses)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bh-mba-courses.csv")
	assert.Contains(t, w.Body.String(), "course_key,course_title,course_url")
}

func TestProgramHandlerExportCoursesUnknownFormat(t *testing.T) {
	h := newProgramTestHandler(t)

	w := getRequest(t, "/programs/bh-mba/courses/export?format=xlsx", gin.Params{{Key: "program_key", Value: "bh-mba"}}, h.ExportCourses)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
