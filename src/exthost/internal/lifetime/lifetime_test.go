package lifetime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"go.uber.org/zap"
)

func TestStorePutGet(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	s := NewStore[string](handles.CategoryOutput, testScope)

	require.NoError(t, s.Put(handles.Handle(0), "build log"))
	v, err := s.Get(handles.Handle(0))
	require.NoError(t, err)
	assert.Equal(t, "build log", v)
	assert.Equal(t, 1, s.Len())
}

func TestStoreGetUnknownIsStale(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	s := NewStore[string](handles.CategoryOutput, testScope)

	_, err := s.Get(handles.Handle(42))
	require.Error(t, err)
	var stale *errors.StaleHandleError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, int64(42), stale.Handle)
	assert.Equal(t, string(handles.CategoryOutput), stale.Category)
}

func TestStoreReleaseIsPermanent(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	s := NewStore[string](handles.CategoryCompletionSet, testScope)

	require.NoError(t, s.Put(handles.Handle(7), "items"))

	v, ok := s.Release(handles.Handle(7))
	require.True(t, ok)
	assert.Equal(t, "items", v)

	// Released handles fail all later access and can never be re-seated.
	_, err := s.Get(handles.Handle(7))
	assert.True(t, errors.IsStaleHandle(err))
	err = s.Put(handles.Handle(7), "other")
	assert.True(t, errors.IsStaleHandle(err))

	// Duplicate release is a no-op, not an error.
	_, ok = s.Release(handles.Handle(7))
	assert.False(t, ok)
}

func TestStoreReleaseAll(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	s := NewStore[int](handles.CategoryOutput, testScope)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Put(handles.Handle(i), i))
	}

	assert.Equal(t, 5, s.ReleaseAll())
	assert.Equal(t, 0, s.Len())
	_, err := s.Get(handles.Handle(3))
	assert.True(t, errors.IsStaleHandle(err))

	// Nothing left on a second pass.
	assert.Equal(t, 0, s.ReleaseAll())
}

func TestTrackerFlush(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	var delivered [][]handles.Handle
	tr := NewTracker(func(ctx context.Context, collected []handles.Handle) error {
		delivered = append(delivered, collected)
		return nil
	}, zap.NewNop().Sugar(), testScope)

	tr.Drop(handles.Handle(1), handles.Handle(2))
	tr.Drop(handles.Handle(3))
	assert.Equal(t, 3, tr.Pending())

	tr.Flush(context.Background())
	require.Len(t, delivered, 1)
	assert.Equal(t, []handles.Handle{1, 2, 3}, delivered[0])
	assert.Equal(t, 0, tr.Pending())

	// Nothing pending, no notice sent.
	tr.Flush(context.Background())
	assert.Len(t, delivered, 1)
}

func TestTrackerFlushBestEffort(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	calls := 0
	tr := NewTracker(func(ctx context.Context, collected []handles.Handle) error {
		calls++
		return errors.New("connection closed")
	}, zap.NewNop().Sugar(), testScope)

	tr.Drop(handles.Handle(9))
	tr.Flush(context.Background())

	// The failed batch is discarded, not retried.
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, tr.Pending())
	tr.Flush(context.Background())
	assert.Equal(t, 1, calls)
}
