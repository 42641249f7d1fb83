package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dealflowhq/dealflow/internal/adapter/otel"
	"github.com/dealflowhq/dealflow/internal/domain/contact"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/domain/organization"
	"github.com/dealflowhq/dealflow/internal/domain/project"
	"github.com/dealflowhq/dealflow/internal/domain/task"
	"github.com/dealflowhq/dealflow/internal/port/cache"
	"github.com/dealflowhq/dealflow/internal/port/database"
)

// Dashboard aggregates every collection the frontend renders in one payload.
type Dashboard struct {
	Orgs     []organization.Organization `json:"orgs"`
	Contacts []contact.Contact           `json:"contacts"`
	Deals    []deal.Deal                 `json:"deals"`
	Projects []project.Project           `json:"projects"`
	Tasks    []task.Task                 `json:"tasks"`
}

// DashboardService builds the dashboard aggregate with concurrent store
// reads and a short-TTL cache in front of them.
type DashboardService struct {
	store   database.Store
	cache   cache.Cache
	metrics *otel.Metrics
	ttl     time.Duration
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store database.Store, cache cache.Cache, metrics *otel.Metrics, ttl time.Duration) *DashboardService {
	return &DashboardService{store: store, cache: cache, metrics: metrics, ttl: ttl}
}

// Get returns the dashboard aggregate, serving from cache when a fresh
// entry exists. All five collections are fetched concurrently; the first
// failing read cancels the rest.
func (s *DashboardService) Get(ctx context.Context) (*Dashboard, error) {
	if d, ok := s.fromCache(ctx); ok {
		return d, nil
	}

	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Orgs, err = s.store.ListOrganizations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Contacts, err = s.store.ListContacts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Deals, err = s.store.ListDeals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Projects, err = s.store.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Tasks, err = s.store.ListTasks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Empty collections serialize as [] rather than null.
	if d.Orgs == nil {
		d.Orgs = []organization.Organization{}
	}
	if d.Contacts == nil {
		d.Contacts = []contact.Contact{}
	}
	if d.Deals == nil {
		d.Deals = []deal.Deal{}
	}
	if d.Projects == nil {
		d.Projects = []project.Project{}
	}
	if d.Tasks == nil {
		d.Tasks = []task.Task{}
	}

	s.toCache(ctx, &d)
	return &d, nil
}

func (s *DashboardService) fromCache(ctx context.Context) (*Dashboard, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok, err := s.cache.Get(ctx, dashboardCacheKey)
	if err != nil || !ok {
		if s.metrics != nil {
			s.metrics.DashboardMisses.Add(ctx, 1)
		}
		return nil, false
	}
	var d Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		slog.Warn("dashboard cache entry corrupt, discarding", "error", err)
		if s.metrics != nil {
			s.metrics.DashboardMisses.Add(ctx, 1)
		}
		return nil, false
	}
	if s.metrics != nil {
		s.metrics.DashboardHits.Add(ctx, 1)
	}
	return &d, true
}

func (s *DashboardService) toCache(ctx context.Context, d *Dashboard) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, data, s.ttl); err != nil {
		slog.Warn("dashboard cache write failed", "error", err)
	}
}
