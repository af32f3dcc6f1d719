package idle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPruneJob_Process(t *testing.T) {
	pruner := new(MockPruner)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)
	pruner.On("PruneBefore", mock.Anything, cutoff).Return(int64(4), nil)

	job := NewPruneJob(pruner, 7*24*time.Hour)
	job.Now = func() time.Time { return now }

	assert.NoError(t, job.Process(context.Background()))
	pruner.AssertExpectations(t)
}

func TestPruneJob_PropagatesError(t *testing.T) {
	pruner := new(MockPruner)
	pruner.On("PruneBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	err := NewPruneJob(pruner, time.Hour).Process(context.Background())
	assert.EqualError(t, err, "db down")
}
