package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealflowhq/dealflow/internal/domain/contact"
	"github.com/dealflowhq/dealflow/internal/domain/organization"
)

// Store implements database.Store using PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Organizations ---

func (s *Store) ListOrganizations(ctx context.Context) ([]organization.Organization, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, COALESCE(industry, ''), created_at
		 FROM organizations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []organization.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (s *Store) CreateOrganization(ctx context.Context, req organization.CreateRequest) (*organization.Organization, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO organizations (id, name, industry)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, COALESCE(industry, ''), created_at`,
		uuid.NewString(), req.Name, nullIfEmpty(req.Industry))

	o, err := scanOrganization(row)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return &o, nil
}

// --- Contacts ---

func (s *Store) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, COALESCE(c.organization_id::text, ''), c.first_name, c.last_name,
		        c.email, c.phone, COALESCE(o.name, ''), c.created_at
		 FROM contacts c
		 LEFT JOIN organizations o ON c.organization_id = o.id
		 ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *Store) CreateContact(ctx context.Context, req contact.CreateRequest) (*contact.Contact, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO contacts (id, organization_id, first_name, last_name, email, phone)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, COALESCE(organization_id::text, ''), first_name, last_name, email, phone, '', created_at`,
		uuid.NewString(), nullIfEmpty(req.OrganizationID), req.FirstName, req.LastName, req.Email, req.Phone)

	c, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &c, nil
}

// --- Scanners ---

func scanOrganization(row scannable) (organization.Organization, error) {
	var o organization.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Industry, &o.CreatedAt)
	return o, err
}

func scanContact(row scannable) (contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(&c.ID, &c.OrganizationID, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.OrgName, &c.CreatedAt)
	return c, err
}
