// Package organization defines the Organization domain entity.
package organization

import "time"

// Organization is the root CRM entity; contacts and deals reference it.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest holds the fields needed to create a new organization.
type CreateRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}
