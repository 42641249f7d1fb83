// Package deal defines the Deal domain entity and its lifecycle stages.
package deal

import "time"

// Stage represents the lifecycle stage of a deal.
type Stage string

const (
	StageNew         Stage = "new"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
)

// Deal represents a sales opportunity attached to an organization.
// The organization reference is set at creation and never reassigned.
type Deal struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Title          string    `json:"title"`
	Stage          Stage     `json:"stage"`
	Amount         float64   `json:"amount"`
	OrgName        string    `json:"org_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateRequest holds the fields needed to create a new deal.
type CreateRequest struct {
	OrganizationID string  `json:"organization_id"`
	Title          string  `json:"title"`
	Amount         float64 `json:"amount"`
}

// WinSpec parameterizes the cascade that runs when a deal is won: the
// follow-up project's title prefix and the ordered starter-task titles.
type WinSpec struct {
	ProjectTitlePrefix string
	TaskTitles         []string
}
