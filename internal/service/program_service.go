package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/registrar-mock-api/internal/dto"
	"github.com/noah-isme/registrar-mock-api/internal/models"
	appErrors "github.com/noah-isme/registrar-mock-api/pkg/errors"
)

type registryReader interface {
	OrganizationByKey(key string) (*models.Organization, bool)
	ProgramByKey(key string) (*models.Program, bool)
	ProgramsByOrganization(orgKey string) []*models.Program
	CourseRunsByProgram(programKey string) []models.CourseRun
}

// ProgramService serves read-only program and course-run projections filtered
// by the metadata-readable access policy.
type ProgramService struct {
	registry registryReader
	cache    *CacheService
	logger   *zap.Logger
}

// NewProgramService constructs ProgramService.
func NewProgramService(registry registryReader, cache *CacheService, logger *zap.Logger) *ProgramService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{registry: registry, cache: cache, logger: logger}
}

// List returns the programs of one organization. An absent organization key is
// an authorization failure, not a bad request; partners without global access
// must always scope their listing.
func (s *ProgramService) List(ctx context.Context, orgKey string) ([]dto.ProgramResponse, error) {
	if orgKey == "" {
		return nil, appErrors.ErrForbidden
	}
	org, ok := s.registry.OrganizationByKey(orgKey)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "organization not found")
	}
	if !org.MetadataReadable {
		return nil, appErrors.ErrForbidden
	}

	cacheKey := "registrar:programs:" + orgKey
	var cached []dto.ProgramResponse
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	programs := dto.FromPrograms(s.registry.ProgramsByOrganization(orgKey))
	s.cache.Set(ctx, cacheKey, programs)
	return programs, nil
}

// Get returns one program's projection.
func (s *ProgramService) Get(ctx context.Context, programKey string) (*dto.ProgramResponse, error) {
	program, err := s.Resolve(programKey)
	if err != nil {
		return nil, err
	}
	projected := dto.FromProgram(program)
	return &projected, nil
}

// ListCourseRuns returns the course runs of one program in fixture order.
func (s *ProgramService) ListCourseRuns(ctx context.Context, programKey string) ([]dto.CourseRunResponse, error) {
	program, err := s.Resolve(programKey)
	if err != nil {
		return nil, err
	}

	cacheKey := "registrar:courses:" + program.Key
	var cached []dto.CourseRunResponse
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	runs := dto.FromCourseRuns(s.registry.CourseRunsByProgram(program.Key))
	s.cache.Set(ctx, cacheKey, runs)
	return runs, nil
}

// Resolve maps a program key to its entity, applying the 404-then-403 gate
// shared by every program-scoped endpoint.
func (s *ProgramService) Resolve(programKey string) (*models.Program, error) {
	program, ok := s.registry.ProgramByKey(programKey)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "program not found")
	}
	if !program.MetadataReadable() {
		return nil, appErrors.ErrForbidden
	}
	return program, nil
}
