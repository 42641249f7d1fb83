package service

import (
	"context"
	"fmt"

	"github.com/dealflowhq/dealflow/internal/domain"
	"github.com/dealflowhq/dealflow/internal/domain/contact"
	"github.com/dealflowhq/dealflow/internal/port/cache"
	"github.com/dealflowhq/dealflow/internal/port/database"
)

// ContactService handles contact business logic.
type ContactService struct {
	store database.Store
	cache cache.Cache
}

// NewContactService creates a new ContactService.
func NewContactService(store database.Store, cache cache.Cache) *ContactService {
	return &ContactService{store: store, cache: cache}
}

// List returns all contacts, newest first.
func (s *ContactService) List(ctx context.Context) ([]contact.Contact, error) {
	return s.store.ListContacts(ctx)
}

// Create creates a new contact after validating the request.
// An empty organization reference is allowed (orphan contact).
func (s *ContactService) Create(ctx context.Context, req *contact.CreateRequest) (*contact.Contact, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", domain.ErrValidation)
	}
	c, err := s.store.CreateContact(ctx, *req)
	if err != nil {
		return nil, err
	}
	invalidateDashboard(ctx, s.cache)
	return c, nil
}
