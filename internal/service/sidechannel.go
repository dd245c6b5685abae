package service

import (
	"context"
	"sync"
	"time"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"

	"github.com/rs/zerolog"
)

// FetchFunc performs one request of a side channel.
type FetchFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// Channel is an independent request/response cycle with its own observable
// state. Only the latest request may update the state; failures stay inside
// the channel.
type Channel[In, Out any] struct {
	name  string
	fetch FetchFunc[In, Out]
	log   zerolog.Logger
	now   func() time.Time

	mu    sync.Mutex
	token uint64
	state models.ChannelState[Out]

	wg sync.WaitGroup
}

// NewChannel creates an idle channel around fetch.
func NewChannel[In, Out any](name string, fetch FetchFunc[In, Out], log zerolog.Logger) *Channel[In, Out] {
	c := &Channel[In, Out]{
		name:  name,
		fetch: fetch,
		log:   log.With().Str("channel", name).Logger(),
		now:   time.Now,
	}
	c.state = models.ChannelState[Out]{Phase: models.ChannelIdle, UpdatedAt: c.now()}
	return c
}

// Fetch runs one request synchronously and records its outcome. The error is
// returned to the caller as well; it never reaches the search pipeline.
func (c *Channel[In, Out]) Fetch(ctx context.Context, in In) (Out, error) {
	c.mu.Lock()
	c.token++
	token := c.token
	c.state = models.ChannelState[Out]{Phase: models.ChannelLoading, UpdatedAt: c.now()}
	c.mu.Unlock()

	out, err := c.fetch(ctx, in)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		c.log.Debug().Err(apperr.Stale(c.name, token, c.token)).Msg("dropping stale side channel result")
		return out, err
	}

	if err != nil {
		c.log.Warn().Err(err).Msg("side channel request failed")
		c.state = models.ChannelState[Out]{
			Phase:     models.ChannelFailed,
			Error:     errorInfo(err),
			UpdatedAt: c.now(),
		}
		return out, err
	}

	value := out
	c.state = models.ChannelState[Out]{
		Phase:     models.ChannelReady,
		Value:     &value,
		UpdatedAt: c.now(),
	}
	return out, nil
}

// Dispatch runs Fetch in the background.
func (c *Channel[In, Out]) Dispatch(ctx context.Context, in In) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_, _ = c.Fetch(ctx, in)
	}()
}

// Wait blocks until every dispatched request has finished.
func (c *Channel[In, Out]) Wait() {
	c.wg.Wait()
}

// State returns a snapshot of the channel state.
func (c *Channel[In, Out]) State() models.ChannelState[Out] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Value != nil {
		v := *s.Value
		s.Value = &v
	}
	if s.Error != nil {
		e := *s.Error
		s.Error = &e
	}
	return s
}

func errorInfo(err error) *models.ErrorInfo {
	if err == nil {
		return nil
	}
	return &models.ErrorInfo{
		Kind:    string(apperr.KindOf(err)),
		Message: apperr.Message(err),
		Cause:   apperr.Cause(err),
	}
}
