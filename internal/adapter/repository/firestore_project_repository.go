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

const projectCollection = "projects"

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) Save(ctx context.Context, project *entity.Project) error {
	// Seed ids are placeholders, never real documents; saving one is a create.
	if project.ID == "" || seed.IsSeedID(project.ID) {
		doc := r.client.Collection(projectCollection).NewDoc()
		project.ID = doc.ID
		project.CreatedAt = time.Now()
	}

	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	project.UpdatedAt = time.Now()

	_, err := r.client.Collection(projectCollection).Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to save project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, id string) error {
	// Firestore deletes of absent documents succeed, which gives the
	// idempotency a stale admin retry relies on.
	_, err := r.client.Collection(projectCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	iter := r.client.Collection(projectCollection).OrderBy("order", firestore.Asc).Documents(ctx)

	var projects []*entity.Project
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, errors.Internal("Failed to parse project data", err)
		}
		project.ID = doc.Ref.ID
		projects = append(projects, &project)
	}

	return projects, nil
}

func (r *firestoreProjectRepository) Watch(ctx context.Context) (<-chan []*entity.Project, error) {
	query := r.client.Collection(projectCollection).OrderBy("order", firestore.Asc)
	docs := watchQuery(ctx, query, projectCollection)

	out := make(chan []*entity.Project)
	go func() {
		defer close(out)
		for snapshot := range docs {
			projects := make([]*entity.Project, 0, len(snapshot))
			for _, doc := range snapshot {
				var project entity.Project
				if err := doc.DataTo(&project); err != nil {
					logger.Warn("Skipping malformed project %s: %v", doc.Ref.ID, err)
					continue
				}
				project.ID = doc.Ref.ID
				projects = append(projects, &project)
			}

			select {
			case out <- projects:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
