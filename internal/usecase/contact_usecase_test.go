package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/domain/entity"
)

type fakeContactRepo struct {
	mu       sync.Mutex
	created  []*entity.ContactMessage
	notified []string
	failNext bool
}

func (r *fakeContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		return errors.New("write failed")
	}
	message.ID = "cm-1"
	r.created = append(r.created, message)
	return nil
}

func (r *fakeContactRepo) MarkNotified(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notified = append(r.notified, id)
	return nil
}

func (r *fakeContactRepo) List(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error) {
	return nil, 0, nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *fakeContactRepo) notifiedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notified)
}

type stubMailer struct {
	mu   sync.Mutex
	sent int
	err  error
}

func (m *stubMailer) SendContactNotification(ctx context.Context, message *entity.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent++
	return m.err
}

func (m *stubMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

func TestSubmitSucceedsWhenMailerFails(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &stubMailer{err: errors.New("smtp unreachable")}
	uc := NewContactUseCase(repo, mailer)

	message, err := uc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Interested in collaborating on a project.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)

	// Background delivery was attempted but never marked the message.
	waitForCond(t, func() bool { return mailer.sentCount() == 1 })
	assert.Zero(t, repo.notifiedCount())
}

func TestSubmitMarksNotifiedOnDelivery(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &stubMailer{}
	uc := NewContactUseCase(repo, mailer)

	_, err := uc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Great portfolio, let's talk.",
	})

	require.NoError(t, err)
	waitForCond(t, func() bool { return repo.notifiedCount() == 1 })
	assert.Equal(t, []string{"cm-1"}, repo.notified)
}

func TestSubmitFailsWhenPersistFails(t *testing.T) {
	repo := &fakeContactRepo{failNext: true}
	mailer := &stubMailer{}
	uc := NewContactUseCase(repo, mailer)

	_, err := uc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "This one never lands.",
	})

	require.Error(t, err)
	assert.Zero(t, mailer.sentCount())
}

func waitForCond(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}
