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

const experienceCollection = "experiences"

type firestoreExperienceRepository struct {
	client *firestore.Client
}

func NewFirestoreExperienceRepository(client *firestore.Client) repository.ExperienceRepository {
	return &firestoreExperienceRepository{
		client: client,
	}
}

func (r *firestoreExperienceRepository) Save(ctx context.Context, experience *entity.Experience) error {
	if experience.ID == "" || seed.IsSeedID(experience.ID) {
		doc := r.client.Collection(experienceCollection).NewDoc()
		experience.ID = doc.ID
		experience.CreatedAt = time.Now()
	}

	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = time.Now()
	}
	experience.UpdatedAt = time.Now()

	_, err := r.client.Collection(experienceCollection).Doc(experience.ID).Set(ctx, experience)
	if err != nil {
		return errors.Internal("Failed to save experience", err)
	}

	return nil
}

func (r *firestoreExperienceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(experienceCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete experience", err)
	}

	return nil
}

func (r *firestoreExperienceRepository) List(ctx context.Context) ([]*entity.Experience, error) {
	// Most recent first by convention: descending order value, no date parsing.
	iter := r.client.Collection(experienceCollection).OrderBy("order", firestore.Desc).Documents(ctx)

	var experiences []*entity.Experience
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate experiences", err)
		}

		var experience entity.Experience
		if err := doc.DataTo(&experience); err != nil {
			return nil, errors.Internal("Failed to parse experience data", err)
		}
		experience.ID = doc.Ref.ID
		experiences = append(experiences, &experience)
	}

	return experiences, nil
}

func (r *firestoreExperienceRepository) Watch(ctx context.Context) (<-chan []*entity.Experience, error) {
	query := r.client.Collection(experienceCollection).OrderBy("order", firestore.Desc)
	docs := watchQuery(ctx, query, experienceCollection)

	out := make(chan []*entity.Experience)
	go func() {
		defer close(out)
		for snapshot := range docs {
			experiences := make([]*entity.Experience, 0, len(snapshot))
			for _, doc := range snapshot {
				var experience entity.Experience
				if err := doc.DataTo(&experience); err != nil {
					logger.Warn("Skipping malformed experience %s: %v", doc.Ref.ID, err)
					continue
				}
				experience.ID = doc.Ref.ID
				experiences = append(experiences, &experience)
			}

			select {
			case out <- experiences:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
