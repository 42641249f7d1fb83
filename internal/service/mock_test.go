package service

import (
	"context"
	"time"

	"github.com/dealflowhq/dealflow/internal/domain"
	"github.com/dealflowhq/dealflow/internal/domain/contact"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/domain/organization"
	"github.com/dealflowhq/dealflow/internal/domain/project"
	"github.com/dealflowhq/dealflow/internal/domain/task"
	"github.com/dealflowhq/dealflow/internal/port/cache"
	"github.com/dealflowhq/dealflow/internal/port/database"
)

// Ensure the mocks implement their ports at compile time.
var _ database.Store = (*mockStore)(nil)
var _ cache.Cache = (*mockCache)(nil)

// mockStore is a minimal in-memory implementation of database.Store for testing.
type mockStore struct {
	orgs     []organization.Organization
	contacts []contact.Contact
	deals    []deal.Deal
	projects []project.Project
	tasks    []task.Task

	// winSpec captures the spec the last WinDeal call received.
	winSpec deal.WinSpec

	// Error hooks — set these to inject failures.
	listOrgsErr      error
	createOrgErr     error
	listContactsErr  error
	createContactErr error
	listDealsErr     error
	getDealErr       error
	createDealErr    error
	winDealErr       error
	listProjectsErr  error
	listTasksErr     error
	pingErr          error
}

func (m *mockStore) ListOrganizations(_ context.Context) ([]organization.Organization, error) {
	return m.orgs, m.listOrgsErr
}

func (m *mockStore) CreateOrganization(_ context.Context, req organization.CreateRequest) (*organization.Organization, error) {
	if m.createOrgErr != nil {
		return nil, m.createOrgErr
	}
	o := organization.Organization{ID: "org-1", Name: req.Name, Industry: req.Industry}
	m.orgs = append(m.orgs, o)
	return &o, nil
}

func (m *mockStore) ListContacts(_ context.Context) ([]contact.Contact, error) {
	return m.contacts, m.listContactsErr
}

func (m *mockStore) CreateContact(_ context.Context, req contact.CreateRequest) (*contact.Contact, error) {
	if m.createContactErr != nil {
		return nil, m.createContactErr
	}
	c := contact.Contact{
		ID:             "con-1",
		OrganizationID: req.OrganizationID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
	}
	m.contacts = append(m.contacts, c)
	return &c, nil
}

func (m *mockStore) ListDeals(_ context.Context) ([]deal.Deal, error) {
	return m.deals, m.listDealsErr
}

func (m *mockStore) GetDeal(_ context.Context, id string) (*deal.Deal, error) {
	if m.getDealErr != nil {
		return nil, m.getDealErr
	}
	for i := range m.deals {
		if m.deals[i].ID == id {
			return &m.deals[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateDeal(_ context.Context, req deal.CreateRequest) (*deal.Deal, error) {
	if m.createDealErr != nil {
		return nil, m.createDealErr
	}
	d := deal.Deal{
		ID:             "deal-1",
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		Stage:          deal.StageNew,
		Amount:         req.Amount,
	}
	m.deals = append(m.deals, d)
	return &d, nil
}

func (m *mockStore) WinDeal(_ context.Context, dealID string, spec deal.WinSpec) (*project.Project, error) {
	if m.winDealErr != nil {
		return nil, m.winDealErr
	}
	m.winSpec = spec
	for i := range m.deals {
		if m.deals[i].ID != dealID {
			continue
		}
		if m.deals[i].Stage == deal.StageWon {
			return nil, domain.ErrAlreadyWon
		}
		m.deals[i].Stage = deal.StageWon
		p := project.Project{
			ID:             "proj-1",
			OrganizationID: m.deals[i].OrganizationID,
			DealID:         dealID,
			Title:          spec.ProjectTitlePrefix + m.deals[i].Title,
			Status:         project.StatusPlanning,
			StartDate:      time.Now(),
		}
		m.projects = append(m.projects, p)
		for _, title := range spec.TaskTitles {
			m.tasks = append(m.tasks, task.Task{ID: title, ProjectID: p.ID, Title: title, Status: task.StatusTodo})
		}
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) ListProjects(_ context.Context) ([]project.Project, error) {
	return m.projects, m.listProjectsErr
}

func (m *mockStore) ListTasks(_ context.Context) ([]task.Task, error) {
	return m.tasks, m.listTasksErr
}

func (m *mockStore) ListTasksByProject(_ context.Context, projectID string) ([]task.Task, error) {
	if m.listTasksErr != nil {
		return nil, m.listTasksErr
	}
	var out []task.Task
	for _, t := range m.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockStore) Ping(_ context.Context) error {
	return m.pingErr
}

// mockCache is an in-memory cache.Cache that records deletions.
type mockCache struct {
	data    map[string][]byte
	deletes []string
	getErr  error
	setErr  error
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}}
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	data, ok := m.data[key]
	return data, ok, nil
}

func (m *mockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.data, key)
	return nil
}
