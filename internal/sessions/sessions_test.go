package sessions

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndHistory(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "sess-1",
		Turn{Role: "user", Content: "hello"},
		Turn{Role: "assistant", Content: "hi"},
	))

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)
}

func TestMemoryStoreEmptySession(t *testing.T) {
	store := NewMemoryStore(10)

	history, err := store.History(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryStoreTrimsToLimit(t *testing.T) {
	store := NewMemoryStore(4)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, store.Append(ctx, "sess-1",
			Turn{Role: "user", Content: fmt.Sprintf("q%d", i)},
			Turn{Role: "assistant", Content: fmt.Sprintf("a%d", i)},
		))
	}

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, history, 4)

	// Oldest turns dropped, newest kept in order.
	assert.Equal(t, "q4", history[0].Content)
	assert.Equal(t, "a4", history[1].Content)
	assert.Equal(t, "q5", history[2].Content)
	assert.Equal(t, "a5", history[3].Content)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "sess-1", Turn{Role: "user", Content: "one"}))
	require.NoError(t, store.Append(ctx, "sess-2", Turn{Role: "user", Content: "two"}))

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "one", history[0].Content)
}

func TestMemoryStoreHistoryReturnsCopy(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "sess-1", Turn{Role: "user", Content: "original"}))

	history, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	history[0].Content = "mutated"

	again, err := store.History(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}
