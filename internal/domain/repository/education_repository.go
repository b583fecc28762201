package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type EducationRepository interface {
	Save(ctx context.Context, education *entity.Education) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Education, error)
	Watch(ctx context.Context) (<-chan []*entity.Education, error)
}
