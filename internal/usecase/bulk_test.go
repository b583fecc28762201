package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkDeleteReportsPerIDOutcomes(t *testing.T) {
	var mu sync.Mutex
	deleted := make(map[string]int)

	del := func(ctx context.Context, id string) error {
		mu.Lock()
		deleted[id]++
		mu.Unlock()
		if id == "broken" {
			return fmt.Errorf("document locked")
		}
		return nil
	}

	outcomes := bulkDelete(context.Background(), []string{"a", "broken", "b"}, del)

	require.Len(t, outcomes, 3)

	// Outcomes keep the request order regardless of completion order.
	assert.Equal(t, "a", outcomes[0].ID)
	assert.True(t, outcomes[0].Success)
	assert.Empty(t, outcomes[0].Message)

	assert.Equal(t, "broken", outcomes[1].ID)
	assert.False(t, outcomes[1].Success)
	assert.Contains(t, outcomes[1].Message, "document locked")

	assert.Equal(t, "b", outcomes[2].ID)
	assert.True(t, outcomes[2].Success)

	// Every id was attempted exactly once; one failure aborted nothing.
	assert.Equal(t, map[string]int{"a": 1, "broken": 1, "b": 1}, deleted)
}

func TestBulkDeleteEmptyInput(t *testing.T) {
	outcomes := bulkDelete(context.Background(), nil, func(ctx context.Context, id string) error {
		t.Fatal("delete must not be called")
		return nil
	})

	assert.Empty(t, outcomes)
}
