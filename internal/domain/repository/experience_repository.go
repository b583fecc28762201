package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ExperienceRepository interface {
	Save(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Experience, error)
	Watch(ctx context.Context) (<-chan []*entity.Experience, error)
}
