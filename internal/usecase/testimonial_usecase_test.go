package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/domain/entity"
	"portfolia/pkg/errors"
)

type fakeTestimonialRepo struct {
	mu    sync.Mutex
	saved []*entity.Testimonial
	flags map[string]bool
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{flags: make(map[string]bool)}
}

func (r *fakeTestimonialRepo) Save(ctx context.Context, testimonial *entity.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, testimonial)
	return nil
}

func (r *fakeTestimonialRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flags[id]; !ok {
		return errors.NotFound("Testimonial", nil)
	}
	r.flags[id] = approved
	return nil
}

func (r *fakeTestimonialRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *fakeTestimonialRepo) List(ctx context.Context) ([]*entity.Testimonial, error) {
	return nil, nil
}

func (r *fakeTestimonialRepo) Watch(ctx context.Context) (<-chan []*entity.Testimonial, error) {
	ch := make(chan []*entity.Testimonial)
	close(ch)
	return ch, nil
}

func (r *fakeTestimonialRepo) WatchApproved(ctx context.Context) (<-chan []*entity.Testimonial, error) {
	ch := make(chan []*entity.Testimonial)
	close(ch)
	return ch, nil
}

func TestSubmitAlwaysStartsUnapproved(t *testing.T) {
	repo := newFakeTestimonialRepo()
	uc := NewTestimonialUseCase(repo)

	testimonial, err := uc.Submit(context.Background(), TestimonialInput{
		Name:    "Dewi",
		Role:    "Product Manager",
		Message: "Shipped the integration ahead of schedule.",
		Rating:  5,
	})

	require.NoError(t, err)
	assert.False(t, testimonial.Approved)
	require.Len(t, repo.saved, 1)
	assert.False(t, repo.saved[0].Approved)
}

func TestSetApprovedFlipsFlagInPlace(t *testing.T) {
	repo := newFakeTestimonialRepo()
	repo.flags["t-1"] = false
	uc := NewTestimonialUseCase(repo)

	require.NoError(t, uc.SetApproved(context.Background(), "t-1", true))
	assert.True(t, repo.flags["t-1"])

	require.NoError(t, uc.SetApproved(context.Background(), "t-1", false))
	assert.False(t, repo.flags["t-1"])

	// No document was created or replaced by the approval change.
	assert.Empty(t, repo.saved)
}

func TestSetApprovedUnknownID(t *testing.T) {
	repo := newFakeTestimonialRepo()
	uc := NewTestimonialUseCase(repo)

	err := uc.SetApproved(context.Background(), "missing", true)
	assert.Error(t, err)
}

func TestAdminSavePreservesApprovalState(t *testing.T) {
	repo := newFakeTestimonialRepo()
	uc := NewTestimonialUseCase(repo)

	_, err := uc.Save(context.Background(), "t-1", TestimonialInput{
		Name:    "Dewi",
		Message: "Updated wording.",
		Rating:  4,
	}, true)

	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.True(t, repo.saved[0].Approved)
}
