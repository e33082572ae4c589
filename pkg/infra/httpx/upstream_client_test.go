package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

type stubDoer struct {
	status int
	err    error
	calls  int
}

func (s *stubDoer) DoTimeout(_ *fasthttp.Request, resp *fasthttp.Response, _ time.Duration) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	resp.SetStatusCode(s.status)
	return nil
}

func TestUpstreamClient_Do(t *testing.T) {
	doer := &stubDoer{status: fasthttp.StatusOK}
	c := NewUpstreamClient(doer, NewCircuitBreaker("upstream", time.Minute, 2), time.Second)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	assert.NoError(t, c.Do(fasthttp.AcquireRequest(), resp))
	assert.Equal(t, fasthttp.StatusOK, resp.StatusCode())
}

func TestUpstreamClient_ServerErrorsTripBreaker(t *testing.T) {
	doer := &stubDoer{status: fasthttp.StatusBadGateway}
	c := NewUpstreamClient(doer, NewCircuitBreaker("upstream", time.Minute, 2), time.Second)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	for i := 0; i < 2; i++ {
		err := c.Do(fasthttp.AcquireRequest(), resp)
		assert.ErrorIs(t, err, ErrUpstreamStatus)
		assert.Equal(t, fasthttp.StatusBadGateway, resp.StatusCode())
	}

	err := c.Do(fasthttp.AcquireRequest(), resp)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, doer.calls)
}

func TestUpstreamClient_TransportError(t *testing.T) {
	boom := errors.New("dial failed")
	c := NewUpstreamClient(&stubDoer{err: boom}, NewCircuitBreaker("upstream", time.Minute, 5), time.Second)

	err := c.Do(fasthttp.AcquireRequest(), fasthttp.AcquireResponse())
	assert.ErrorIs(t, err, boom)
}
