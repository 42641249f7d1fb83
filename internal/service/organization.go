// Package service implements business logic on top of ports.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealflowhq/dealflow/internal/domain"
	"github.com/dealflowhq/dealflow/internal/domain/organization"
	"github.com/dealflowhq/dealflow/internal/port/cache"
	"github.com/dealflowhq/dealflow/internal/port/database"
)

// dashboardCacheKey is the cache key for the serialized dashboard aggregate.
// Mutating services delete it so the next dashboard read is fresh.
const dashboardCacheKey = "dashboard:v1"

// invalidateDashboard drops the cached dashboard aggregate. Cache failures
// are non-fatal; the entry expires by TTL anyway.
func invalidateDashboard(ctx context.Context, c cache.Cache) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, dashboardCacheKey); err != nil {
		slog.Warn("dashboard cache invalidation failed", "error", err)
	}
}

// OrganizationService handles organization business logic.
type OrganizationService struct {
	store database.Store
	cache cache.Cache
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(store database.Store, cache cache.Cache) *OrganizationService {
	return &OrganizationService{store: store, cache: cache}
}

// List returns all organizations, newest first.
func (s *OrganizationService) List(ctx context.Context) ([]organization.Organization, error) {
	return s.store.ListOrganizations(ctx)
}

// Create creates a new organization after validating the request.
func (s *OrganizationService) Create(ctx context.Context, req *organization.CreateRequest) (*organization.Organization, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	o, err := s.store.CreateOrganization(ctx, *req)
	if err != nil {
		return nil, err
	}
	invalidateDashboard(ctx, s.cache)
	return o, nil
}
