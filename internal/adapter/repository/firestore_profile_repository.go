package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

const profileCollection = "profile"

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(profileCollection).Doc(entity.ProfileDocID)
}

func (r *firestoreProfileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	// Singleton: the id is fixed regardless of what the caller carries.
	profile.ID = entity.ProfileDocID
	profile.UpdatedAt = time.Now()

	_, err := r.doc().Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to save profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	doc, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}
	profile.ID = doc.Ref.ID

	return &profile, nil
}

func (r *firestoreProfileRepository) Watch(ctx context.Context) (<-chan *entity.Profile, error) {
	snaps := watchDoc(ctx, r.doc())

	out := make(chan *entity.Profile)
	go func() {
		defer close(out)
		for snap := range snaps {
			if !snap.Exists() {
				// Document not yet created; consumers keep their seed value.
				continue
			}

			var profile entity.Profile
			if err := snap.DataTo(&profile); err != nil {
				logger.Warn("Skipping malformed profile document: %v", err)
				continue
			}
			profile.ID = snap.Ref.ID

			select {
			case out <- &profile:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
