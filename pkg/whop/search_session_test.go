package whop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hugohenrick/whop-relay/internal/domain/catalog"
)

// blockingSearcher segura a busca "lenta" até ser liberada ou cancelada
type blockingSearcher struct {
	started chan string
	release chan struct{}
}

func (b *blockingSearcher) Search(ctx context.Context, query string) (catalog.Results, error) {
	b.started <- query
	if query == "lenta" {
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return catalog.Results{{ID: query}}, nil
}

func TestSearchSessionDiscardsSuperseded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	searcher := &blockingSearcher{started: make(chan string, 2), release: make(chan struct{})}
	session := NewSearchSession(searcher)

	var (
		wg       sync.WaitGroup
		staleRes catalog.Results
		staleErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleRes, staleErr = session.Search(context.Background(), "lenta")
	}()
	require.Equal(t, "lenta", <-searcher.started)

	fresh, err := session.Search(context.Background(), "rapida")
	<-searcher.started
	require.NoError(t, err)
	assert.Equal(t, "rapida", fresh[0].ID)

	wg.Wait()
	assert.Nil(t, staleRes)
	assert.True(t, errors.Is(staleErr, ErrSuperseded))
	assert.Equal(t, uint64(2), session.Generation())
}

func TestSearchSessionStaleResultAfterCompletion(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	// o upstream ignora o cancelamento e responde mesmo assim
	slow := searcherFunc(func(ctx context.Context, query string) (catalog.Results, error) {
		if query == "antiga" {
			time.Sleep(50 * time.Millisecond)
		}
		return catalog.Results{{ID: query}}, nil
	})
	session := NewSearchSession(slow)

	done := make(chan error, 1)
	go func() {
		_, err := session.Search(context.Background(), "antiga")
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	res, err := session.Search(context.Background(), "nova")
	require.NoError(t, err)
	assert.Equal(t, "nova", res[0].ID)

	assert.ErrorIs(t, <-done, ErrSuperseded)
}

func TestSearchSessionPropagatesErrors(t *testing.T) {
	failing := searcherFunc(func(ctx context.Context, query string) (catalog.Results, error) {
		return nil, &UpstreamError{Status: 500, Message: "boom"}
	})
	session := NewSearchSession(failing)

	_, err := session.Search(context.Background(), "x")
	upErr, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 500, upErr.Status)
}

func TestSearchSessionClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	searcher := &blockingSearcher{started: make(chan string, 1), release: make(chan struct{})}
	session := NewSearchSession(searcher)

	done := make(chan error, 1)
	go func() {
		_, err := session.Search(context.Background(), "lenta")
		done <- err
	}()
	<-searcher.started

	session.Close()
	assert.ErrorIs(t, <-done, ErrSuperseded)
}

type searcherFunc func(ctx context.Context, query string) (catalog.Results, error)

func (f searcherFunc) Search(ctx context.Context, query string) (catalog.Results, error) {
	return f(ctx, query)
}
