package repository

import (
	"context"

	"portfolia/internal/domain/entity"
)

type TestimonialRepository interface {
	Save(ctx context.Context, testimonial *entity.Testimonial) error
	// SetApproved flips the visibility flag in place; the document is
	// never deleted or recreated by an approval change.
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Testimonial, error)
	// Watch streams every testimonial, pending ones included; the admin
	// review queue consumes this.
	Watch(ctx context.Context) (<-chan []*entity.Testimonial, error)
	// WatchApproved streams only approved testimonials, newest first;
	// public surfaces consume this.
	WatchApproved(ctx context.Context) (<-chan []*entity.Testimonial, error)
}
