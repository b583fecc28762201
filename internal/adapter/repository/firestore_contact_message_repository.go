package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
)

const contactMessageCollection = "contact_messages"

type firestoreContactMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreContactMessageRepository(client *firestore.Client) repository.ContactMessageRepository {
	return &firestoreContactMessageRepository{
		client: client,
	}
}

func (r *firestoreContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.ID == "" {
		doc := r.client.Collection(contactMessageCollection).NewDoc()
		message.ID = doc.ID
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(contactMessageCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to store contact message", err)
	}

	return nil
}

func (r *firestoreContactMessageRepository) MarkNotified(ctx context.Context, id string) error {
	_, err := r.client.Collection(contactMessageCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "notified", Value: true},
	})
	if err != nil {
		return errors.Internal("Failed to mark contact message notified", err)
	}

	return nil
}

func (r *firestoreContactMessageRepository) List(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error) {
	query := r.client.Collection(contactMessageCollection).OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count contact messages", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.ContactMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate contact messages", err)
		}

		var message entity.ContactMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse contact message data", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreContactMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(contactMessageCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete contact message", err)
	}

	return nil
}
