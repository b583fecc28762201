package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type SkillUseCase struct {
	skillGroupRepo repository.SkillGroupRepository
}

func NewSkillUseCase(skillGroupRepo repository.SkillGroupRepository) *SkillUseCase {
	return &SkillUseCase{
		skillGroupRepo: skillGroupRepo,
	}
}

type SkillGroupInput struct {
	Title  string
	Icon   string
	Skills []string
}

func (uc *SkillUseCase) Save(ctx context.Context, id string, input SkillGroupInput) (*entity.SkillGroup, error) {
	group := &entity.SkillGroup{
		ID:     id,
		Title:  input.Title,
		Icon:   input.Icon,
		Skills: input.Skills,
	}

	if err := uc.skillGroupRepo.Save(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id string) error {
	return uc.skillGroupRepo.Delete(ctx, id)
}

func (uc *SkillUseCase) BulkDelete(ctx context.Context, ids []string) []DeleteOutcome {
	return bulkDelete(ctx, ids, uc.skillGroupRepo.Delete)
}
