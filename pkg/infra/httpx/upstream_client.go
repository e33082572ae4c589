package httpx

import (
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// ErrUpstreamStatus marks a 5xx answer. The response is still populated and
// may be relayed, but it counts as a breaker failure.
var ErrUpstreamStatus = errors.New("upstream returned server error")

//go:generate mockery --name=UpstreamClient --dir=. --output=./mocks --filename=upstream_client_mock.go --case=underscore --with-expecter
type UpstreamClient interface {
	Do(req *fasthttp.Request, resp *fasthttp.Response) error
}

type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type upstreamClient struct {
	doer    Doer
	breaker CircuitBreaker
	timeout time.Duration
}

func NewUpstreamClient(doer Doer, breaker CircuitBreaker, timeout time.Duration) UpstreamClient {
	if doer == nil {
		doer = &fasthttp.Client{
			MaxConnsPerHost:          512,
			MaxIdleConnDuration:      10 * time.Second,
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			NoDefaultUserAgentHeader: true,
		}
	}
	return &upstreamClient{
		doer:    doer,
		breaker: breaker,
		timeout: timeout,
	}
}

func (c *upstreamClient) Do(req *fasthttp.Request, resp *fasthttp.Response) error {
	return c.breaker.Execute(func() error {
		if err := c.doer.DoTimeout(req, resp, c.timeout); err != nil {
			return err
		}
		if resp.StatusCode() >= fasthttp.StatusInternalServerError {
			return fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode())
		}
		return nil
	})
}
