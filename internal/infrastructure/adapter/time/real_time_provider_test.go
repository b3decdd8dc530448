package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_Sleep(t *testing.T) {
	p := NewRealTimeProvider()

	start := time.Now()
	err := p.Sleep(context.Background(), 10*core.Millisecond)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestRealTimeProvider_SleepCanceled(t *testing.T) {
	p := NewRealTimeProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Sleep(ctx, core.Minute)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	p := NewRealTimeProvider()

	ctx, cancel := p.WithTimeout(context.Background(), core.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}
