package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dealflowhq/dealflow/internal/adapter/otel"
	"github.com/dealflowhq/dealflow/internal/domain"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/domain/project"
	"github.com/dealflowhq/dealflow/internal/port/cache"
	"github.com/dealflowhq/dealflow/internal/port/database"
)

// DealService handles deal business logic, including the win cascade.
type DealService struct {
	store   database.Store
	cache   cache.Cache
	metrics *otel.Metrics
	win     deal.WinSpec
}

// NewDealService creates a new DealService. The win spec controls the title
// and starter tasks of the project spawned when a deal is won.
func NewDealService(store database.Store, cache cache.Cache, metrics *otel.Metrics, win deal.WinSpec) *DealService {
	return &DealService{store: store, cache: cache, metrics: metrics, win: win}
}

// List returns all deals, newest first.
func (s *DealService) List(ctx context.Context) ([]deal.Deal, error) {
	return s.store.ListDeals(ctx)
}

// Get returns a single deal by ID.
func (s *DealService) Get(ctx context.Context, id string) (*deal.Deal, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: deal id is required", domain.ErrValidation)
	}
	return s.store.GetDeal(ctx, id)
}

// Create creates a new deal in stage "new" after validating the request.
func (s *DealService) Create(ctx context.Context, req *deal.CreateRequest) (*deal.Deal, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	d, err := s.store.CreateDeal(ctx, *req)
	if err != nil {
		return nil, err
	}
	invalidateDashboard(ctx, s.cache)
	return d, nil
}

// Win transitions a deal to won and spawns its project with starter tasks.
// The whole cascade runs in a single transaction; a deal that is already won
// yields domain.ErrAlreadyWon and an unknown ID yields domain.ErrNotFound.
func (s *DealService) Win(ctx context.Context, dealID string) (*project.Project, error) {
	if dealID == "" {
		return nil, fmt.Errorf("%w: deal id is required", domain.ErrValidation)
	}

	ctx, span := otel.StartWinSpan(ctx, dealID)
	defer span.End()

	start := time.Now()
	p, err := s.store.WinDeal(ctx, dealID, s.win)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DealsWon.Add(ctx, 1)
		s.metrics.WinDuration.Record(ctx, time.Since(start).Seconds())
	}
	invalidateDashboard(ctx, s.cache)
	return p, nil
}
