package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolia/pkg/logger"
)

// watchQuery streams the full document set of query on every backend
// snapshot. The returned channel is closed when ctx is cancelled or the
// stream fails; stream failures are logged, never surfaced, so consumers
// keep rendering their last known value.
func watchQuery(ctx context.Context, query firestore.Query, collection string) <-chan []*firestore.DocumentSnapshot {
	out := make(chan []*firestore.DocumentSnapshot)

	go func() {
		defer close(out)

		snaps := query.Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("Snapshot stream for %s failed: %v", collection, err)
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read %s snapshot: %v", collection, err)
				continue
			}

			select {
			case out <- docs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// watchDoc streams a single document on every change. Deleted or missing
// documents are delivered as nil data.
func watchDoc(ctx context.Context, ref *firestore.DocumentRef) <-chan *firestore.DocumentSnapshot {
	out := make(chan *firestore.DocumentSnapshot)

	go func() {
		defer close(out)

		snaps := ref.Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("Snapshot stream for document %s failed: %v", ref.Path, err)
				return
			}

			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
