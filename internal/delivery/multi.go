package delivery

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/robalyx/blogchain/internal/engine/service"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// MultiEmitter fans a batch of events out to several emitters concurrently
// and waits for all of them before returning.
type MultiEmitter struct {
	emitters []service.Emitter
}

// NewMultiEmitter combines the given emitters into one.
func NewMultiEmitter(emitters ...service.Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit hands the same batch to every emitter in parallel.
func (m *MultiEmitter) Emit(ctx context.Context, events []types.Event) {
	var wg conc.WaitGroup
	for _, emitter := range m.emitters {
		wg.Go(func() {
			emitter.Emit(ctx, events)
		})
	}
	wg.Wait()
}

// LogEmitter is an Emitter that only records event kinds through the logger.
// Useful as a development sink when no Redis endpoint is available.
type LogEmitter struct {
	log func(kind types.EventKind, account types.AccountID)
}

// NewLogEmitter wraps the callback as an Emitter.
func NewLogEmitter(log func(kind types.EventKind, account types.AccountID)) *LogEmitter {
	return &LogEmitter{log: log}
}

// Emit invokes the callback once per event.
func (l *LogEmitter) Emit(_ context.Context, events []types.Event) {
	for _, event := range events {
		l.log(event.Kind, event.Account)
	}
}
