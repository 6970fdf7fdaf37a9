package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/noah-isme/registrar-mock-api/internal/models"
)

// FixtureStore is the read-only registry backing the mock API. The whole
// dataset is resolved at construction time; lookups never touch I/O.
type FixtureStore struct {
	organizations map[string]*models.Organization
	programs      map[string]*models.Program
	orgPrograms   map[string][]*models.Program
	programRuns   map[string][]models.CourseRun
}

type fixtureOrganization struct {
	Key              string `json:"key"`
	Name             string `json:"name"`
	MetadataReadable bool   `json:"metadata_readable"`
}

type fixtureProgram struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Organization string `json:"organization"`
}

type fixtureCourseRun struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Program string `json:"program"`
}

type fixtureFile struct {
	Organizations []fixtureOrganization `json:"organizations"`
	Programs      []fixtureProgram      `json:"programs"`
	CourseRuns    []fixtureCourseRun    `json:"course_runs"`
}

// NewFixtureStore builds a store from the optional JSON fixture file. When the
// path is empty the built-in dataset is used.
func NewFixtureStore(path string) (*FixtureStore, error) {
	data := defaultFixtures
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		var parsed fixtureFile
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parse fixtures: %w", err)
		}
		data = parsed
	}
	return buildStore(data)
}

func buildStore(data fixtureFile) (*FixtureStore, error) {
	store := &FixtureStore{
		organizations: make(map[string]*models.Organization, len(data.Organizations)),
		programs:      make(map[string]*models.Program, len(data.Programs)),
		orgPrograms:   make(map[string][]*models.Program, len(data.Organizations)),
		programRuns:   make(map[string][]models.CourseRun, len(data.Programs)),
	}

	for _, o := range data.Organizations {
		if o.Key == "" {
			return nil, fmt.Errorf("organization fixture missing key")
		}
		if _, exists := store.organizations[o.Key]; exists {
			return nil, fmt.Errorf("duplicate organization key %q", o.Key)
		}
		store.organizations[o.Key] = &models.Organization{
			Key:              o.Key,
			Name:             o.Name,
			MetadataReadable: o.MetadataReadable,
		}
	}

	for _, p := range data.Programs {
		if p.Key == "" {
			return nil, fmt.Errorf("program fixture missing key")
		}
		org, ok := store.organizations[p.Organization]
		if !ok {
			return nil, fmt.Errorf("program %q references unknown organization %q", p.Key, p.Organization)
		}
		if _, exists := store.programs[p.Key]; exists {
			return nil, fmt.Errorf("duplicate program key %q", p.Key)
		}
		program := &models.Program{
			Key:                  p.Key,
			Title:                p.Title,
			URL:                  p.URL,
			ManagingOrganization: org,
		}
		store.programs[p.Key] = program
		store.orgPrograms[org.Key] = append(store.orgPrograms[org.Key], program)
	}

	for _, r := range data.CourseRuns {
		if r.Key == "" {
			return nil, fmt.Errorf("course run fixture missing key")
		}
		if _, ok := store.programs[r.Program]; !ok {
			return nil, fmt.Errorf("course run %q references unknown program %q", r.Key, r.Program)
		}
		store.programRuns[r.Program] = append(store.programRuns[r.Program], models.CourseRun{
			Key:        r.Key,
			Title:      r.Title,
			URL:        r.URL,
			ProgramKey: r.Program,
		})
	}

	return store, nil
}

// OrganizationByKey resolves an organization.
func (s *FixtureStore) OrganizationByKey(key string) (*models.Organization, bool) {
	org, ok := s.organizations[key]
	return org, ok
}

// ProgramByKey resolves a program.
func (s *FixtureStore) ProgramByKey(key string) (*models.Program, bool) {
	program, ok := s.programs[key]
	return program, ok
}

// ProgramsByOrganization lists an organization's programs in fixture order.
func (s *FixtureStore) ProgramsByOrganization(orgKey string) []*models.Program {
	return s.orgPrograms[orgKey]
}

// CourseRunsByProgram lists a program's course runs in fixture order.
func (s *FixtureStore) CourseRunsByProgram(programKey string) []models.CourseRun {
	return s.programRuns[programKey]
}
