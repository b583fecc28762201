package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/seed"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

const testimonialCollection = "testimonials"

type firestoreTestimonialRepository struct {
	client *firestore.Client
}

func NewFirestoreTestimonialRepository(client *firestore.Client) repository.TestimonialRepository {
	return &firestoreTestimonialRepository{
		client: client,
	}
}

func (r *firestoreTestimonialRepository) Save(ctx context.Context, testimonial *entity.Testimonial) error {
	if testimonial.ID == "" || seed.IsSeedID(testimonial.ID) {
		doc := r.client.Collection(testimonialCollection).NewDoc()
		testimonial.ID = doc.ID
		testimonial.CreatedAt = time.Now()
	}

	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(testimonialCollection).Doc(testimonial.ID).Set(ctx, testimonial)
	if err != nil {
		return errors.Internal("Failed to save testimonial", err)
	}

	return nil
}

func (r *firestoreTestimonialRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	_, err := r.client.Collection(testimonialCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "approved", Value: approved},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Testimonial", err)
		}
		return errors.Internal("Failed to update testimonial approval", err)
	}

	return nil
}

func (r *firestoreTestimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(testimonialCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete testimonial", err)
	}

	return nil
}

func (r *firestoreTestimonialRepository) List(ctx context.Context) ([]*entity.Testimonial, error) {
	iter := r.client.Collection(testimonialCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var testimonials []*entity.Testimonial
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate testimonials", err)
		}

		var testimonial entity.Testimonial
		if err := doc.DataTo(&testimonial); err != nil {
			return nil, errors.Internal("Failed to parse testimonial data", err)
		}
		testimonial.ID = doc.Ref.ID
		testimonials = append(testimonials, &testimonial)
	}

	return testimonials, nil
}

func (r *firestoreTestimonialRepository) Watch(ctx context.Context) (<-chan []*entity.Testimonial, error) {
	query := r.client.Collection(testimonialCollection).OrderBy("createdAt", firestore.Desc)
	return r.watch(ctx, query), nil
}

func (r *firestoreTestimonialRepository) WatchApproved(ctx context.Context) (<-chan []*entity.Testimonial, error) {
	query := r.client.Collection(testimonialCollection).
		Where("approved", "==", true).
		OrderBy("createdAt", firestore.Desc)
	return r.watch(ctx, query), nil
}

func (r *firestoreTestimonialRepository) watch(ctx context.Context, query firestore.Query) <-chan []*entity.Testimonial {
	docs := watchQuery(ctx, query, testimonialCollection)

	out := make(chan []*entity.Testimonial)
	go func() {
		defer close(out)
		for snapshot := range docs {
			testimonials := make([]*entity.Testimonial, 0, len(snapshot))
			for _, doc := range snapshot {
				var testimonial entity.Testimonial
				if err := doc.DataTo(&testimonial); err != nil {
					logger.Warn("Skipping malformed testimonial %s: %v", doc.Ref.ID, err)
					continue
				}
				testimonial.ID = doc.Ref.ID
				testimonials = append(testimonials, &testimonial)
			}

			select {
			case out <- testimonials:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
