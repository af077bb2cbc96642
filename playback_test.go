package clustervis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayback(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(WithObserver(rec))

	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	require.NoError(t, Playback(context.Background(), d, 5000))

	assert.Equal(t, StateCompleted, d.State())
	assert.Equal(t, 1, rec.completes)
}

func TestPlayback_InvalidFPS(t *testing.T) {
	d := NewDriver()

	err := Playback(context.Background(), d, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPlayback_IdleDriverReturnsImmediately(t *testing.T) {
	d := NewDriver()
	require.NoError(t, Playback(context.Background(), d, 60))
}

func TestPlayback_Cancellation(t *testing.T) {
	d := NewDriver()
	require.NoError(t, d.Start(twoPairs(), testConfig(2)))
	d.Pause()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Playback(ctx, d, 1000)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatePaused, d.State())
}
