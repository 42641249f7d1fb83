// Package project defines the Project domain entity.
package project

import "time"

// Status represents the current state of a project.
type Status string

const (
	StatusPlanning Status = "planning"
	StatusActive   Status = "active"
	StatusDone     Status = "done"
)

// Project is the follow-up engagement spawned when a deal is won.
// It keeps a reference to the deal that produced it and copies the
// deal's organization reference.
type Project struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	DealID         string    `json:"deal_id"`
	Title          string    `json:"title"`
	Status         Status    `json:"status"`
	StartDate      time.Time `json:"start_date"`
	OrgName        string    `json:"org_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
