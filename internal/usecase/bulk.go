package usecase

import (
	"context"
	"sync"
)

// DeleteOutcome is the result of one deletion within a bulk request, so a
// caller can tell which of N deletions actually failed.
type DeleteOutcome struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// bulkDelete issues every delete concurrently and collects a result per
// identifier. Best-effort: failures never abort the remaining deletes.
func bulkDelete(ctx context.Context, ids []string, del func(context.Context, string) error) []DeleteOutcome {
	outcomes := make([]DeleteOutcome, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			if err := del(ctx, id); err != nil {
				outcomes[i] = DeleteOutcome{ID: id, Success: false, Message: err.Error()}
				return
			}
			outcomes[i] = DeleteOutcome{ID: id, Success: true}
		}(i, id)
	}
	wg.Wait()

	return outcomes
}
