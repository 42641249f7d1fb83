// Package contact defines the Contact domain entity.
package contact

import "time"

// Contact represents a person, optionally attached to an organization.
// Orphan contacts (no organization) are allowed.
type Contact struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id,omitempty"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	OrgName        string    `json:"org_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateRequest holds the fields needed to create a new contact.
type CreateRequest struct {
	OrganizationID string `json:"organization_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}
