package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/seed"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

const certificationCollection = "certifications"

type firestoreCertificationRepository struct {
	client *firestore.Client
}

func NewFirestoreCertificationRepository(client *firestore.Client) repository.CertificationRepository {
	return &firestoreCertificationRepository{
		client: client,
	}
}

func (r *firestoreCertificationRepository) Save(ctx context.Context, certification *entity.Certification) error {
	if certification.ID == "" || seed.IsSeedID(certification.ID) {
		doc := r.client.Collection(certificationCollection).NewDoc()
		certification.ID = doc.ID
		certification.CreatedAt = time.Now()
	}

	if certification.CreatedAt.IsZero() {
		certification.CreatedAt = time.Now()
	}
	certification.UpdatedAt = time.Now()

	_, err := r.client.Collection(certificationCollection).Doc(certification.ID).Set(ctx, certification)
	if err != nil {
		return errors.Internal("Failed to save certification", err)
	}

	return nil
}

func (r *firestoreCertificationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(certificationCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete certification", err)
	}

	return nil
}

func (r *firestoreCertificationRepository) List(ctx context.Context) ([]*entity.Certification, error) {
	iter := r.certificationQuery().Documents(ctx)

	var certifications []*entity.Certification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate certifications", err)
		}

		var certification entity.Certification
		if err := doc.DataTo(&certification); err != nil {
			return nil, errors.Internal("Failed to parse certification data", err)
		}
		certification.ID = doc.Ref.ID
		certifications = append(certifications, &certification)
	}

	return certifications, nil
}

func (r *firestoreCertificationRepository) Watch(ctx context.Context) (<-chan []*entity.Certification, error) {
	docs := watchQuery(ctx, r.certificationQuery(), certificationCollection)

	out := make(chan []*entity.Certification)
	go func() {
		defer close(out)
		for snapshot := range docs {
			certifications := make([]*entity.Certification, 0, len(snapshot))
			for _, doc := range snapshot {
				var certification entity.Certification
				if err := doc.DataTo(&certification); err != nil {
					logger.Warn("Skipping malformed certification %s: %v", doc.Ref.ID, err)
					continue
				}
				certification.ID = doc.Ref.ID
				certifications = append(certifications, &certification)
			}

			select {
			case out <- certifications:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *firestoreCertificationRepository) certificationQuery() firestore.Query {
	return r.client.Collection(certificationCollection).OrderBy(firestore.DocumentID, firestore.Asc)
}
