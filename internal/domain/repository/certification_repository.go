package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type CertificationRepository interface {
	Save(ctx context.Context, certification *entity.Certification) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Certification, error)
	Watch(ctx context.Context) (<-chan []*entity.Certification, error)
}
