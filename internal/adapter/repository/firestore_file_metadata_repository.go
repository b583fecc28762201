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

const fileMetadataCollection = "file_metadata"

type firestoreFileMetadataRepository struct {
	client *firestore.Client
}

func NewFirestoreFileMetadataRepository(client *firestore.Client) repository.FileMetadataRepository {
	return &firestoreFileMetadataRepository{
		client: client,
	}
}

func (r *firestoreFileMetadataRepository) Create(ctx context.Context, metadata *entity.FileMetadata) error {
	if metadata.ID == "" {
		doc := r.client.Collection(fileMetadataCollection).NewDoc()
		metadata.ID = doc.ID
	}
	if metadata.UploadedAt.IsZero() {
		metadata.UploadedAt = time.Now()
	}

	_, err := r.client.Collection(fileMetadataCollection).Doc(metadata.ID).Set(ctx, metadata)
	if err != nil {
		return errors.Internal("Failed to store file metadata", err)
	}

	return nil
}

func (r *firestoreFileMetadataRepository) List(ctx context.Context, limit, offset int) ([]*entity.FileMetadata, int64, error) {
	query := r.client.Collection(fileMetadataCollection).OrderBy("uploadedAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count file metadata", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var files []*entity.FileMetadata
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate file metadata", err)
		}

		var metadata entity.FileMetadata
		if err := doc.DataTo(&metadata); err != nil {
			return nil, 0, errors.Internal("Failed to parse file metadata", err)
		}
		metadata.ID = doc.Ref.ID
		files = append(files, &metadata)
	}

	return files, total, nil
}

func (r *firestoreFileMetadataRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(fileMetadataCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete file metadata", err)
	}

	return nil
}
