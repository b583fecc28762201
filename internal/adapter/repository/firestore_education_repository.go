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

const educationCollection = "educations"

type firestoreEducationRepository struct {
	client *firestore.Client
}

func NewFirestoreEducationRepository(client *firestore.Client) repository.EducationRepository {
	return &firestoreEducationRepository{
		client: client,
	}
}

func (r *firestoreEducationRepository) Save(ctx context.Context, education *entity.Education) error {
	if education.ID == "" || seed.IsSeedID(education.ID) {
		doc := r.client.Collection(educationCollection).NewDoc()
		education.ID = doc.ID
		education.CreatedAt = time.Now()
	}

	if education.CreatedAt.IsZero() {
		education.CreatedAt = time.Now()
	}
	education.UpdatedAt = time.Now()

	_, err := r.client.Collection(educationCollection).Doc(education.ID).Set(ctx, education)
	if err != nil {
		return errors.Internal("Failed to save education", err)
	}

	return nil
}

func (r *firestoreEducationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(educationCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete education", err)
	}

	return nil
}

func (r *firestoreEducationRepository) List(ctx context.Context) ([]*entity.Education, error) {
	iter := r.client.Collection(educationCollection).OrderBy("order", firestore.Asc).Documents(ctx)

	var educations []*entity.Education
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate educations", err)
		}

		var education entity.Education
		if err := doc.DataTo(&education); err != nil {
			return nil, errors.Internal("Failed to parse education data", err)
		}
		education.ID = doc.Ref.ID
		educations = append(educations, &education)
	}

	return educations, nil
}

func (r *firestoreEducationRepository) Watch(ctx context.Context) (<-chan []*entity.Education, error) {
	query := r.client.Collection(educationCollection).OrderBy("order", firestore.Asc)
	docs := watchQuery(ctx, query, educationCollection)

	out := make(chan []*entity.Education)
	go func() {
		defer close(out)
		for snapshot := range docs {
			educations := make([]*entity.Education, 0, len(snapshot))
			for _, doc := range snapshot {
				var education entity.Education
				if err := doc.DataTo(&education); err != nil {
					logger.Warn("Skipping malformed education %s: %v", doc.Ref.ID, err)
					continue
				}
				education.ID = doc.Ref.ID
				educations = append(educations, &education)
			}

			select {
			case out <- educations:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
