package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/service"
	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/setup/config"
)

const (
	hashA = "QmWWQSuPMS6aXCbZKpEjPHPUZN2NjB3YrhJTHsV4X3vb2t"
	hashB = "QmbWqxBEKC3P8tqsKc98xmWNzrzDtRLMiMPL8wBuTGsMnR"
	hashC = "QmT78zSuBmuS4z925WZfrqQ1qHaJ56DQaTfyMUF7F8ff5o"
	hashD = "QmZULkCELmmk5XNfCgTnCyFgAVxBRBXyDHGGMVoLFLiXEN"
)

// eventRecorder captures emitted events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []types.Event
}

func (r *eventRecorder) Emit(_ context.Context, events []types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
}

func (r *eventRecorder) kinds() []types.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]types.EventKind, len(r.events))
	for i, event := range r.events {
		kinds[i] = event.Kind
	}

	return kinds
}

func setupTest(t *testing.T) (*service.Engine, *eventRecorder) {
	t.Helper()

	recorder := &eventRecorder{}
	engine := service.NewEngine(storage.NewMemoryStore(), config.DefaultConfig(), recorder, zap.NewNop())

	return engine, recorder
}

func origin(account types.AccountID) types.Origin {
	return types.Origin{Account: account, Block: 1, Time: 1700000000}
}

// createTestBlog creates a blog for the account and fails the test on error.
func createTestBlog(t *testing.T, engine *service.Engine, account types.AccountID, slug string) types.BlogID {
	t.Helper()

	blogID, err := engine.CreateBlog(t.Context(), origin(account), slug, hashA)
	require.NoError(t, err)

	return blogID
}

// createTestPost creates a regular post in the blog.
func createTestPost(t *testing.T, engine *service.Engine, account types.AccountID, blogID types.BlogID) types.PostID {
	t.Helper()

	postID, err := engine.CreatePost(t.Context(), origin(account), blogID, hashB, types.RegularPostExtension())
	require.NoError(t, err)

	return postID
}
