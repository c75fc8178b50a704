package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/payledger/mocks/port/core"
)

type countingJob struct {
	runs atomic.Int32
	err  error
}

func (j *countingJob) Run() error {
	j.runs.Add(1)
	return j.err
}

func (j *countingJob) Name() string { return "counting" }

func TestScheduler_AddJob(t *testing.T) {
	t.Run("should accept descriptors and six-field schedules", func(t *testing.T) {
		s := New(logger.NewNoopLogger())
		job := &countingJob{}

		assert.NoError(t, s.AddJob("@every 5m", job))
		assert.NoError(t, s.AddJob("0 */5 * * * *", job))
		assert.NoError(t, s.AddJob("*/5 * * * *", job))
	})

	t.Run("should reject malformed schedules", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Failed to register job", mock.Anything).Return().Once()
		s := New(mockLogger)

		assert.Error(t, s.AddJob("every five minutes", &countingJob{}))
	})
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := New(logger.NewNoopLogger())
	job := &countingJob{err: errors.New("remote unavailable")}

	require.NoError(t, s.AddJob("@every 1s", job))
	s.Start()
	s.Start()

	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	s.Stop()
	s.Stop()
	after := job.runs.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, after, job.runs.Load())
}

func TestScheduler_RunNow(t *testing.T) {
	s := New(logger.NewNoopLogger())
	job := &countingJob{}

	require.NoError(t, s.RunNow(job))
	assert.Equal(t, int32(1), job.runs.Load())
}
