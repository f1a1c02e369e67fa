package services

//go:generate mockgen -source=scheme.go -destination=scheme_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

// SchemeLister lists government schemes.
type SchemeLister interface {
	List(ctx context.Context, location, category string) ([]models.GovernmentScheme, error)
}

// SchemeService looks up government schemes.
type SchemeService struct {
	schemes SchemeLister
}

// NewSchemeService creates a new SchemeService.
func NewSchemeService(schemes SchemeLister) *SchemeService {
	return &SchemeService{schemes: schemes}
}

// List filters schemes by a location substring and an exact category.
func (s *SchemeService) List(ctx context.Context, location, category string) ([]models.GovernmentScheme, error) {
	schemes, err := s.schemes.List(ctx, location, category)
	if err != nil {
		logger.Log.Errorw("failed to list schemes", "location", location, "category", category, "error", err)
		return nil, err
	}
	return schemes, nil
}
