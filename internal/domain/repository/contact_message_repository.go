package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	MarkNotified(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error)
	Delete(ctx context.Context, id string) error
}
