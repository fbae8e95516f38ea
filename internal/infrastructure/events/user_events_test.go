package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	bodies      []any
	hadDeadline bool
	err         error
}

func (c *capturePublisher) PublishJSON(ctx context.Context, body any) error {
	_, c.hadDeadline = ctx.Deadline()
	c.bodies = append(c.bodies, body)
	return c.err
}

func TestPublisher_Publish(t *testing.T) {
	cp := &capturePublisher{}
	p := NewPublisher(cp)

	require.NoError(t, p.Publish(context.Background(), UserCreated, "user-1", "test@example.com"))
	require.Len(t, cp.bodies, 1)
	assert.True(t, cp.hadDeadline)

	ev, ok := cp.bodies[0].(UserEvent)
	require.True(t, ok)
	assert.Equal(t, UserCreated, ev.Type)
	assert.Equal(t, "user-1", ev.UserID)
	assert.Equal(t, "test@example.com", ev.Email)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestPublisher_PropagatesError(t *testing.T) {
	boom := errors.New("channel closed")
	p := NewPublisher(&capturePublisher{err: boom})

	assert.ErrorIs(t, p.Publish(context.Background(), UserUpdated, "user-1", "a@b.c"), boom)
}
