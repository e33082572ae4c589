package counter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/infra/httpx"
)

type breakerCounter struct {
	next    requestevent.Counter
	breaker httpx.CircuitBreaker
}

// WithBreaker guards a counter so that a failing store is skipped quickly.
// Every failure is reported wrapped in domain.ErrStoreUnavailable.
func WithBreaker(next requestevent.Counter, breaker httpx.CircuitBreaker) requestevent.Counter {
	return &breakerCounter{next: next, breaker: breaker}
}

func (c *breakerCounter) CountByIP(ctx context.Context, ip string, since time.Time) (int64, error) {
	var count int64
	err := c.breaker.Execute(func() error {
		n, err := c.next.CountByIP(ctx, ip, since)
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return count, nil
}
