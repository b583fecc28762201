package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ProfileRepository interface {
	Save(ctx context.Context, profile *entity.Profile) error
	Get(ctx context.Context) (*entity.Profile, error)
	Watch(ctx context.Context) (<-chan *entity.Profile, error)
}
