package content

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"career-passport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Success(t *testing.T) {
	m := NewMount(context.Background())
	var got []domain.Career
	l := NewLoader(NewFSSource(testFS(), "test"))

	task := Fetch(m, l, domain.ResourceCareers, func(c []domain.Career, err error) {
		assert.NoError(t, err)
		got = c
	})

	careers, err := task.Wait(context.Background())
	require.NoError(t, err)
	m.Wait()
	assert.Equal(t, TaskSuccess, task.State())
	assert.Len(t, careers, 2)
	assert.Len(t, got, 2)
}

func TestTask_Error(t *testing.T) {
	m := NewMount(context.Background())
	l := NewLoader(NewFSSource(testFS(), "test"))

	task := Fetch[domain.StoryCollection](m, l, domain.ResourceSuccessStories, nil)

	_, err := task.Wait(context.Background())
	assert.Equal(t, domain.ErrContentUnavailable, domain.CodeOf(err))
	assert.Equal(t, TaskError, task.State())
}

func TestTask_DiscardedAfterUnmount(t *testing.T) {
	m := NewMount(context.Background())
	release := make(chan struct{})
	var callbacks atomic.Int32

	task := Start(m, func(ctx context.Context) (string, error) {
		<-release
		return "late", nil
	}, func(string, error) {
		callbacks.Add(1)
	})

	assert.Equal(t, TaskLoading, task.State())
	m.Unmount()
	assert.Equal(t, TaskDiscarded, task.State())
	assert.False(t, m.Mounted())

	close(release)
	m.Wait()

	assert.Equal(t, TaskDiscarded, task.State())
	assert.Equal(t, int32(0), callbacks.Load())
	_, err := task.Wait(context.Background())
	assert.True(t, errors.Is(err, ErrDiscarded))
}

func TestTask_StartAfterUnmount(t *testing.T) {
	m := NewMount(context.Background())
	m.Unmount()
	m.Unmount()

	var ran atomic.Bool
	task := Start(m, func(ctx context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	}, nil)

	m.Wait()
	assert.Equal(t, TaskDiscarded, task.State())
	assert.False(t, ran.Load())
}

func TestTask_UnmountAfterSuccessKeepsResult(t *testing.T) {
	m := NewMount(context.Background())
	task := Start(m, func(ctx context.Context) (int, error) { return 42, nil }, nil)

	v, err := task.Wait(context.Background())
	require.NoError(t, err)
	m.Wait()
	m.Unmount()

	assert.Equal(t, 42, v)
	assert.Equal(t, TaskSuccess, task.State())
}

func TestTask_WaitHonoursContext(t *testing.T) {
	m := NewMount(context.Background())
	block := make(chan struct{})
	defer close(block)
	task := Start(m, func(ctx context.Context) (int, error) {
		<-block
		return 0, nil
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, TaskLoading, task.State())
}
