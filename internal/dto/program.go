package dto

import "github.com/noah-isme/registrar-mock-api/internal/models"

// ProgramResponse is the wire projection of a program.
type ProgramResponse struct {
	ProgramKey   string `json:"program_key"`
	ProgramTitle string `json:"program_title"`
	ProgramURL   string `json:"program_url"`
}

// CourseRunResponse is the wire projection of a course run.
type CourseRunResponse struct {
	CourseKey   string `json:"course_key"`
	CourseTitle string `json:"course_title"`
	CourseURL   string `json:"course_url"`
}

// FromProgram projects a program model.
func FromProgram(p *models.Program) ProgramResponse {
	return ProgramResponse{ProgramKey: p.Key, ProgramTitle: p.Title, ProgramURL: p.URL}
}

// FromPrograms projects a program slice preserving order.
func FromPrograms(programs []*models.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, FromProgram(p))
	}
	return out
}

// FromCourseRun projects a course run model.
func FromCourseRun(r models.CourseRun) CourseRunResponse {
	return CourseRunResponse{CourseKey: r.Key, CourseTitle: r.Title, CourseURL: r.URL}
}

// FromCourseRuns projects a course run slice preserving order.
func FromCourseRuns(runs []models.CourseRun) []CourseRunResponse {
	out := make([]CourseRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, FromCourseRun(r))
	}
	return out
}
