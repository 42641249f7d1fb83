package postgres

import (
	"context"
	"fmt"

	"github.com/dealflowhq/dealflow/internal/domain/project"
	"github.com/dealflowhq/dealflow/internal/domain/task"
)

// --- Projects ---

func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.organization_id, p.deal_id, p.title, p.status, p.start_date,
		        COALESCE(o.name, ''), p.created_at
		 FROM projects p
		 LEFT JOIN organizations o ON p.organization_id = o.id
		 ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// --- Tasks ---

func (s *Store) ListTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, project_id, title, status, due_date, created_at
		 FROM tasks ORDER BY created_at DESC, position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) ListTasksByProject(ctx context.Context, projectID string) ([]task.Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, project_id, title, status, due_date, created_at
		 FROM tasks WHERE project_id = $1 ORDER BY position ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// --- Scanners ---

func scanProject(row scannable) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.OrganizationID, &p.DealID, &p.Title, &p.Status,
		&p.StartDate, &p.OrgName, &p.CreatedAt)
	return p, err
}

func scanTask(row scannable) (task.Task, error) {
	var t task.Task
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.DueDate, &t.CreatedAt)
	return t, err
}
