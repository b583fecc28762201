package service

import (
	"context"

	"portfolia/internal/domain/entity"
)

// Mailer delivers contact-form notifications. Delivery is best-effort;
// callers must not fail the submission flow on a mailer error.
type Mailer interface {
	SendContactNotification(ctx context.Context, message *entity.ContactMessage) error
}
