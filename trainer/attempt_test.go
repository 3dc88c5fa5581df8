package trainer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNote(t *testing.T) Note {
	t.Helper()
	n, err := NewNote(45, "A", -2)
	require.NoError(t, err)
	return n
}

func TestAttemptStartsOnce(t *testing.T) {
	a := NewAttempt(testNote(t))
	assert.False(t, a.Started())

	require.NoError(t, a.markStarted(time.Now()))
	assert.True(t, a.Started())

	err := a.markStarted(time.Now())
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestAttemptSuccessMustFollowStart(t *testing.T) {
	a := NewAttempt(testNote(t))
	start := time.Now()
	require.NoError(t, a.markStarted(start))

	assert.ErrorIs(t, a.markSuccess(start), ErrSuccessBeforeStart)
	assert.ErrorIs(t, a.markSuccess(start.Add(-time.Second)), ErrSuccessBeforeStart)

	require.NoError(t, a.markSuccess(start.Add(time.Second)))
	assert.ErrorIs(t, a.markSuccess(start.Add(2*time.Second)), ErrSuccessAlreadySet)
}

func TestAttemptCompletesOnce(t *testing.T) {
	a := NewAttempt(testNote(t))
	require.NoError(t, a.markComplete())
	assert.True(t, a.Complete())
	assert.ErrorIs(t, a.markComplete(), ErrAlreadyComplete)
}

func TestAttemptTerminatesOnce(t *testing.T) {
	a := NewAttempt(testNote(t))
	require.NoError(t, a.RequestTerminate())
	assert.True(t, a.Terminated())
	assert.ErrorIs(t, a.RequestTerminate(), ErrAlreadyTerminated)
}

func TestAttemptElapsed(t *testing.T) {
	a := NewAttempt(testNote(t))
	assert.Zero(t, a.Elapsed(), "elapsed before start must be zero")

	start := time.Now().Add(-3 * time.Second)
	require.NoError(t, a.markStarted(start))
	live := a.Elapsed()
	assert.Greater(t, live, 2*time.Second, "listening elapsed should track wall time")

	require.NoError(t, a.markSuccess(start.Add(time.Second)))
	require.NoError(t, a.markComplete())
	assert.Equal(t, time.Second, a.Elapsed(), "completed elapsed is success minus start")
}

func TestAttemptFailSurfacesAsTerminated(t *testing.T) {
	a := NewAttempt(testNote(t))
	cause := errors.New("device unplugged")
	a.fail(cause)

	assert.True(t, a.Terminated())
	assert.False(t, a.Complete())
	assert.ErrorIs(t, a.Err(), cause)
}

func TestAttemptIDsAreUnique(t *testing.T) {
	a := NewAttempt(testNote(t))
	b := NewAttempt(testNote(t))
	assert.NotEqual(t, a.ID(), b.ID())
}
