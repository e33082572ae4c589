package ratelimit

import (
	"context"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"golang.org/x/sync/errgroup"
)

// Snapshot counts the requests an IP made in the trailing minute, hour and
// day. The three lookups run concurrently; the first error wins.
func Snapshot(ctx context.Context, counter requestevent.Counter, ip string, now time.Time) (securityevent.Counts, error) {
	var counts securityevent.Counts
	g, gctx := errgroup.WithContext(ctx)

	windows := []struct {
		span time.Duration
		dst  *int64
	}{
		{time.Minute, &counts.Minute},
		{time.Hour, &counts.Hour},
		{24 * time.Hour, &counts.Day},
	}
	for _, w := range windows {
		w := w
		g.Go(func() error {
			n, err := counter.CountByIP(gctx, ip, now.Add(-w.span))
			if err != nil {
				return err
			}
			*w.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return securityevent.Counts{}, err
	}
	return counts, nil
}
