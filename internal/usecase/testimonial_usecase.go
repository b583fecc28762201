package usecase

import (
	"context"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
)

type TestimonialUseCase struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialUseCase(testimonialRepo repository.TestimonialRepository) *TestimonialUseCase {
	return &TestimonialUseCase{
		testimonialRepo: testimonialRepo,
	}
}

type TestimonialInput struct {
	Name    string
	Role    string
	Message string
	Rating  int
}

// Submit records a visitor testimonial. New entries always start
// unapproved and wait in the admin review queue.
func (uc *TestimonialUseCase) Submit(ctx context.Context, input TestimonialInput) (*entity.Testimonial, error) {
	testimonial := &entity.Testimonial{
		Name:     input.Name,
		Role:     input.Role,
		Message:  input.Message,
		Rating:   input.Rating,
		Approved: false,
	}

	if err := uc.testimonialRepo.Save(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

// Save is the admin edit path; it preserves whatever approval state the
// admin submitted.
func (uc *TestimonialUseCase) Save(ctx context.Context, id string, input TestimonialInput, approved bool) (*entity.Testimonial, error) {
	testimonial := &entity.Testimonial{
		ID:       id,
		Name:     input.Name,
		Role:     input.Role,
		Message:  input.Message,
		Rating:   input.Rating,
		Approved: approved,
	}

	if err := uc.testimonialRepo.Save(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (uc *TestimonialUseCase) SetApproved(ctx context.Context, id string, approved bool) error {
	return uc.testimonialRepo.SetApproved(ctx, id, approved)
}

func (uc *TestimonialUseCase) Delete(ctx context.Context, id string) error {
	return uc.testimonialRepo.Delete(ctx, id)
}

func (uc *TestimonialUseCase) BulkDelete(ctx context.Context, ids []string) []DeleteOutcome {
	return bulkDelete(ctx, ids, uc.testimonialRepo.Delete)
}
