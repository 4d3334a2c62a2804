package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

type countingPublisher struct {
	calls  atomic.Int32
	err    error
	closed atomic.Bool
}

func (p *countingPublisher) Publish(context.Context, []usecase.MatchEvent) error {
	p.calls.Add(1)
	return p.err
}

func (p *countingPublisher) Close() error {
	p.closed.Store(true)
	return nil
}

func TestFanOut_DeliversToAllPublishers(t *testing.T) {
	ok := &countingPublisher{}
	failing := &countingPublisher{err: errors.New("endpoint down")}

	fanout, err := NewFanOut(2, nil, ok, failing, usecase.NewNoopMatchEventPublisher())
	require.NoError(t, err)

	err = fanout.Publish(context.Background(), sampleEvents())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint down")
	assert.EqualValues(t, 1, ok.calls.Load())
	assert.EqualValues(t, 1, failing.calls.Load())

	require.NoError(t, fanout.Close())
	assert.True(t, ok.closed.Load())
	assert.True(t, failing.closed.Load())
}

func TestFanOut_SkipsEmptyBatch(t *testing.T) {
	p := &countingPublisher{}
	fanout, err := NewFanOut(1, nil, p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fanout.Close() })

	require.NoError(t, fanout.Publish(context.Background(), nil))
	assert.Zero(t, p.calls.Load())
}
