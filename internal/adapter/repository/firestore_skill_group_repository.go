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

const skillGroupCollection = "skill_groups"

type firestoreSkillGroupRepository struct {
	client *firestore.Client
}

func NewFirestoreSkillGroupRepository(client *firestore.Client) repository.SkillGroupRepository {
	return &firestoreSkillGroupRepository{
		client: client,
	}
}

func (r *firestoreSkillGroupRepository) Save(ctx context.Context, group *entity.SkillGroup) error {
	if group.ID == "" || seed.IsSeedID(group.ID) {
		doc := r.client.Collection(skillGroupCollection).NewDoc()
		group.ID = doc.ID
		group.CreatedAt = time.Now()
	}

	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	group.UpdatedAt = time.Now()

	_, err := r.client.Collection(skillGroupCollection).Doc(group.ID).Set(ctx, group)
	if err != nil {
		return errors.Internal("Failed to save skill group", err)
	}

	return nil
}

func (r *firestoreSkillGroupRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(skillGroupCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete skill group", err)
	}

	return nil
}

func (r *firestoreSkillGroupRepository) List(ctx context.Context) ([]*entity.SkillGroup, error) {
	iter := r.skillGroupQuery().Documents(ctx)

	var groups []*entity.SkillGroup
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate skill groups", err)
		}

		var group entity.SkillGroup
		if err := doc.DataTo(&group); err != nil {
			return nil, errors.Internal("Failed to parse skill group data", err)
		}
		group.ID = doc.Ref.ID
		groups = append(groups, &group)
	}

	return groups, nil
}

func (r *firestoreSkillGroupRepository) Watch(ctx context.Context) (<-chan []*entity.SkillGroup, error) {
	docs := watchQuery(ctx, r.skillGroupQuery(), skillGroupCollection)

	out := make(chan []*entity.SkillGroup)
	go func() {
		defer close(out)
		for snapshot := range docs {
			groups := make([]*entity.SkillGroup, 0, len(snapshot))
			for _, doc := range snapshot {
				var group entity.SkillGroup
				if err := doc.DataTo(&group); err != nil {
					logger.Warn("Skipping malformed skill group %s: %v", doc.Ref.ID, err)
					continue
				}
				group.ID = doc.Ref.ID
				groups = append(groups, &group)
			}

			select {
			case out <- groups:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Skill groups carry no order field; document-id order keeps enumeration
// stable across snapshots.
func (r *firestoreSkillGroupRepository) skillGroupQuery() firestore.Query {
	return r.client.Collection(skillGroupCollection).OrderBy(firestore.DocumentID, firestore.Asc)
}
