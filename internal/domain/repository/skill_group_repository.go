package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type SkillGroupRepository interface {
	Save(ctx context.Context, group *entity.SkillGroup) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.SkillGroup, error)
	Watch(ctx context.Context) (<-chan []*entity.SkillGroup, error)
}
