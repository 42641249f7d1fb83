package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dealflowhq/dealflow/internal/domain"
	"github.com/dealflowhq/dealflow/internal/domain/deal"
	"github.com/dealflowhq/dealflow/internal/domain/project"
)

// --- Deals ---

func (s *Store) ListDeals(ctx context.Context) ([]deal.Deal, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT d.id, d.organization_id, d.title, d.stage, d.amount, COALESCE(o.name, ''), d.created_at
		 FROM deals d
		 LEFT JOIN organizations o ON d.organization_id = o.id
		 ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var deals []deal.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

func (s *Store) GetDeal(ctx context.Context, id string) (*deal.Deal, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT d.id, d.organization_id, d.title, d.stage, d.amount, COALESCE(o.name, ''), d.created_at
		 FROM deals d
		 LEFT JOIN organizations o ON d.organization_id = o.id
		 WHERE d.id = $1`, id)

	d, err := scanDeal(row)
	if err != nil {
		return nil, notFoundWrap(err, "get deal %s", id)
	}
	return &d, nil
}

func (s *Store) CreateDeal(ctx context.Context, req deal.CreateRequest) (*deal.Deal, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO deals (id, organization_id, title, amount)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, organization_id, title, stage, amount, '', created_at`,
		uuid.NewString(), req.OrganizationID, req.Title, req.Amount)

	d, err := scanDeal(row)
	if err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}
	return &d, nil
}

// WinDeal transitions a deal to won and materializes the follow-up project
// and its starter tasks inside a single transaction. The stage update is a
// check-and-set: a missing deal yields domain.ErrNotFound, an already-won
// deal yields domain.ErrAlreadyWon, and in both cases nothing is written.
func (s *Store) WinDeal(ctx context.Context, dealID string, spec deal.WinSpec) (*project.Project, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	// RETURNING yields post-update state for the cascade.
	var orgID, title string
	err = tx.QueryRow(ctx,
		`UPDATE deals SET stage = $2 WHERE id = $1 AND stage <> $2
		 RETURNING organization_id, title`,
		dealID, string(deal.StageWon),
	).Scan(&orgID, &title)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a missing deal from one that was already won.
		var stage string
		stageErr := tx.QueryRow(ctx, `SELECT stage FROM deals WHERE id = $1`, dealID).Scan(&stage)
		if errors.Is(stageErr, pgx.ErrNoRows) {
			return nil, fmt.Errorf("win deal %s: %w", dealID, domain.ErrNotFound)
		}
		if stageErr != nil {
			return nil, fmt.Errorf("win deal %s: %w", dealID, stageErr)
		}
		return nil, fmt.Errorf("win deal %s: %w", dealID, domain.ErrAlreadyWon)
	}
	if err != nil {
		return nil, fmt.Errorf("win deal %s: %w", dealID, err)
	}

	p := project.Project{
		ID:             uuid.NewString(),
		OrganizationID: orgID,
		DealID:         dealID,
		Title:          spec.ProjectTitlePrefix + title,
		StartDate:      time.Now(),
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO projects (id, organization_id, deal_id, title, start_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING status, created_at`,
		p.ID, p.OrganizationID, p.DealID, p.Title, p.StartDate,
	).Scan(&p.Status, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	for i, taskTitle := range spec.TaskTitles {
		if _, err := tx.Exec(ctx,
			`INSERT INTO tasks (id, project_id, title, position) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), p.ID, taskTitle, i,
		); err != nil {
			return nil, fmt.Errorf("insert task %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit win: %w", err)
	}
	return &p, nil
}

func scanDeal(row scannable) (deal.Deal, error) {
	var d deal.Deal
	err := row.Scan(&d.ID, &d.OrganizationID, &d.Title, &d.Stage, &d.Amount, &d.OrgName, &d.CreatedAt)
	return d, err
}
