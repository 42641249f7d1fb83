// Package database defines the database store port (interface).
package database

import (
	"context"

	"github.com/dealflowhq/dealflow/internal/domain/contact"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/domain/organization"
	"github.com/dealflowhq/dealflow/internal/domain/project"
	"github.com/dealflowhq/dealflow/internal/domain/task"
)

// Store is the port interface for database operations.
type Store interface {
	// Organizations
	ListOrganizations(ctx context.Context) ([]organization.Organization, error)
	CreateOrganization(ctx context.Context, req organization.CreateRequest) (*organization.Organization, error)

	// Contacts
	ListContacts(ctx context.Context) ([]contact.Contact, error)
	CreateContact(ctx context.Context, req contact.CreateRequest) (*contact.Contact, error)

	// Deals
	ListDeals(ctx context.Context) ([]deal.Deal, error)
	GetDeal(ctx context.Context, id string) (*deal.Deal, error)
	CreateDeal(ctx context.Context, req deal.CreateRequest) (*deal.Deal, error)

	// WinDeal transitions a deal to won and creates the follow-up project
	// with its starter tasks in a single transaction. It returns
	// domain.ErrNotFound when no such deal exists and domain.ErrAlreadyWon
	// when the deal's stage is already won; in both cases the store is
	// left unchanged.
	WinDeal(ctx context.Context, dealID string, spec deal.WinSpec) (*project.Project, error)

	// Projects and tasks (created only by the win cascade)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]task.Task, error)

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}
