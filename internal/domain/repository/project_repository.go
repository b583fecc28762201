package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ProjectRepository interface {
	Save(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Project, error)
	// Watch streams the full ordered collection on every change. The
	// channel is closed when ctx is cancelled or the stream fails.
	Watch(ctx context.Context) (<-chan []*entity.Project, error)
}
