package postgres

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWaitFor_RetriesUntilAvailable(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	attempts := 0
	ping := func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	err := WaitFor(context.Background(), ping, time.Millisecond, logger)
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("database unavailable, waiting 1ms")))
}

func TestWaitFor_ImmediateSuccess(t *testing.T) {
	attempts := 0
	err := WaitFor(context.Background(), func(context.Context) error {
		attempts++
		return nil
	}, time.Second, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWaitFor_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := WaitFor(ctx, func(context.Context) error {
		return errors.New("connection refused")
	}, 5*time.Millisecond, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
