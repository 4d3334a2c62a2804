package notify

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

type Closer interface {
	Close() error
}

// FanOut delivers every batch to all publishers concurrently on a bounded
// worker pool. The returned error combines the individual failures.
type FanOut struct {
	publishers []usecase.MatchEventPublisher
	pool       *ants.Pool
	logger     *logging.Logger
}

func NewFanOut(workers int, logger *logging.Logger, publishers ...usecase.MatchEventPublisher) (*FanOut, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, crerr.Wrap(err, "create notify worker pool")
	}

	return &FanOut{
		publishers: publishers,
		pool:       pool,
		logger:     logger.Named("notify.fanout"),
	}, nil
}

func (f *FanOut) Publish(ctx context.Context, events []usecase.MatchEvent) error {
	if len(events) == 0 || len(f.publishers) == 0 {
		return nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	fail := func(i int, err error) {
		f.logger.WarnContext(ctx, "match event delivery failed",
			"publisher", i,
			"events", len(events),
			"transient", IsTransient(err),
			"error", err,
		)
		mu.Lock()
		errs = crerr.CombineErrors(errs, err)
		mu.Unlock()
	}

	for i, publisher := range f.publishers {
		i, publisher := i, publisher
		wg.Add(1)
		err := f.pool.Submit(func() {
			defer wg.Done()
			if err := publisher.Publish(ctx, events); err != nil {
				fail(i, err)
			}
		})
		if err != nil {
			wg.Done()
			fail(i, crerr.Wrap(err, "submit delivery task"))
		}
	}
	wg.Wait()

	return errs
}

// Close releases the pool and closes every publisher that holds resources.
func (f *FanOut) Close() error {
	f.pool.Release()

	var errs error
	for _, publisher := range f.publishers {
		if closer, ok := publisher.(Closer); ok {
			errs = crerr.CombineErrors(errs, closer.Close())
		}
	}
	return errs
}
