package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type EducationUseCase struct {
	educationRepo repository.EducationRepository
}

func NewEducationUseCase(educationRepo repository.EducationRepository) *EducationUseCase {
	return &EducationUseCase{
		educationRepo: educationRepo,
	}
}

type EducationInput struct {
	School      string
	Degree      string
	Year        string
	Description string
	Order       int
}

func (uc *EducationUseCase) Save(ctx context.Context, id string, input EducationInput) (*entity.Education, error) {
	education := &entity.Education{
		ID:          id,
		School:      input.School,
		Degree:      input.Degree,
		Year:        input.Year,
		Description: input.Description,
		Order:       input.Order,
	}

	if err := uc.educationRepo.Save(ctx, education); err != nil {
		return nil, err
	}

	return education, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id string) error {
	return uc.educationRepo.Delete(ctx, id)
}

func (uc *EducationUseCase) BulkDelete(ctx context.Context, ids []string) []DeleteOutcome {
	return bulkDelete(ctx, ids, uc.educationRepo.Delete)
}
