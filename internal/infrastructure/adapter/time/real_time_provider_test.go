package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	start := p.Now()
	assert.WithinDuration(t, time.Now(), start, time.Second)
	assert.GreaterOrEqual(t, p.Since(start), time.Duration(0))

	ctx, cancel := p.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
