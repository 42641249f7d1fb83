package service

import (
	"context"
	"fmt"

	"github.com/dealflowhq/dealflow/internal/domain"
	"github.com/dealflowhq/dealflow/internal/domain/project"
	"github.com/dealflowhq/dealflow/internal/domain/task"
	"github.com/dealflowhq/dealflow/internal/port/database"
)

// ProjectService handles project and task read paths. Projects are only
// created through the deal win cascade, so there is no Create here.
type ProjectService struct {
	store database.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store database.Store) *ProjectService {
	return &ProjectService{store: store}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]project.Project, error) {
	return s.store.ListProjects(ctx)
}

// Tasks returns the tasks of one project, oldest first.
func (s *ProjectService) Tasks(ctx context.Context, projectID string) ([]task.Task, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", domain.ErrValidation)
	}
	return s.store.ListTasksByProject(ctx, projectID)
}
