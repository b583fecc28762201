package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type ExperienceUseCase struct {
	experienceRepo repository.ExperienceRepository
}

func NewExperienceUseCase(experienceRepo repository.ExperienceRepository) *ExperienceUseCase {
	return &ExperienceUseCase{
		experienceRepo: experienceRepo,
	}
}

type ExperienceInput struct {
	Company     string
	Role        string
	Start       string
	End         string
	Description string
	Order       int
}

func (uc *ExperienceUseCase) Save(ctx context.Context, id string, input ExperienceInput) (*entity.Experience, error) {
	experience := &entity.Experience{
		ID:          id,
		Company:     input.Company,
		Role:        input.Role,
		Start:       input.Start,
		End:         input.End,
		Description: input.Description,
		Order:       input.Order,
	}

	if err := uc.experienceRepo.Save(ctx, experience); err != nil {
		return nil, err
	}

	return experience, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id string) error {
	return uc.experienceRepo.Delete(ctx, id)
}

func (uc *ExperienceUseCase) BulkDelete(ctx context.Context, ids []string) []DeleteOutcome {
	return bulkDelete(ctx, ids, uc.experienceRepo.Delete)
}
