package usecase

import (
	"context"
	"time"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/domain/service"
	"portfolia/pkg/logger"
)

type ContactUseCase struct {
	contactRepo repository.ContactMessageRepository
	mailer      service.Mailer
}

func NewContactUseCase(contactRepo repository.ContactMessageRepository, mailer service.Mailer) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Submit stores the message, then notifies in the background. The caller
// sees success once the message is persisted; notification delivery is
// fire-and-forget and its failure is logged server-side only.
func (uc *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := uc.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	go uc.notify(message)

	return message, nil
}

func (uc *ContactUseCase) notify(message *entity.ContactMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := uc.mailer.SendContactNotification(ctx, message); err != nil {
		logger.Error("Contact notification for %s failed: %v", message.ID, err)
		return
	}

	if err := uc.contactRepo.MarkNotified(ctx, message.ID); err != nil {
		logger.Warn("Failed to mark contact message %s notified: %v", message.ID, err)
	}
}

func (uc *ContactUseCase) ListMessages(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error) {
	return uc.contactRepo.List(ctx, limit, offset)
}

func (uc *ContactUseCase) DeleteMessage(ctx context.Context, id string) error {
	return uc.contactRepo.Delete(ctx, id)
}
