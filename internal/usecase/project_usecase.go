package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
}

func NewProjectUseCase(projectRepo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
	}
}

type ProjectInput struct {
	Title       string
	Description string
	Image       string
	Tags        []string
	Github      string
	Live        string
	AIHint      string
	Order       int
}

// Save creates when id is empty (or a seed placeholder) and updates in
// place otherwise.
func (uc *ProjectUseCase) Save(ctx context.Context, id string, input ProjectInput) (*entity.Project, error) {
	project := &entity.Project{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Tags:        input.Tags,
		Github:      input.Github,
		Live:        input.Live,
		AIHint:      input.AIHint,
		Order:       input.Order,
	}

	if err := uc.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	return uc.projectRepo.Delete(ctx, id)
}

func (uc *ProjectUseCase) BulkDelete(ctx context.Context, ids []string) []DeleteOutcome {
	return bulkDelete(ctx, ids, uc.projectRepo.Delete)
}
