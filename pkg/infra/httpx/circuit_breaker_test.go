package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_Execute_FailureIsWrapped(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("test error")

	err := breaker.Execute(func() error { return testError })

	assert.ErrorIs(t, err, testError)
	assert.Contains(t, err.Error(), "failure-test")
	assert.NotErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_Execute_RecoversPanics(t *testing.T) {
	breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3)

	err := breaker.Execute(func() error { panic("boom") })

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: boom")
}

func TestCircuitBreaker_Execute_OpensAfterMaxFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 2)
	for i := 0; i < 2; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
	assert.Equal(t, "open", breaker.State())
}

func TestCircuitBreaker_Execute_Recovers(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)
	assert.Error(t, breaker.Execute(func() error { return errors.New("trigger") }))

	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
}
