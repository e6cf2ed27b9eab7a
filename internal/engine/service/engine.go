// Package service implements the state-transition operations of the social
// graph: content, follows, reactions, sharing and the reputation-weighted
// scoring economy. Each operation is the unit of atomicity: it runs against
// a staging overlay and commits only after every check has passed.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/models"
	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/setup/config"
)

// Emitter receives the structured event records of a committed operation.
// Delivery is the host runtime's concern; the engine only hands them over.
type Emitter interface {
	Emit(ctx context.Context, events []types.Event)
}

// Engine exposes every state-transition operation to the host runtime. The
// host is responsible for serializing operations; the engine assumes no two
// operations overlap in time.
type Engine struct {
	store   storage.Store
	cfg     *config.Config
	emitter Emitter
	logger  *zap.Logger
}

// NewEngine creates an engine over the given store. The emitter may be nil
// when the host does not consume events.
func NewEngine(store storage.Store, cfg *config.Config, emitter Emitter, logger *zap.Logger) *Engine {
	return &Engine{
		store:   store,
		cfg:     cfg,
		emitter: emitter,
		logger:  logger.Named("engine"),
	}
}

// session is the per-operation execution environment: one repository view
// over the staging overlay, the caller's origin and the event buffer.
type session struct {
	repo   *models.Repository
	cfg    *config.Config
	origin types.Origin
	events []types.Event
}

// record buffers an event, stamping id, block and the acting account.
func (s *session) record(event types.Event) {
	event.ID = uuid.New()
	event.Block = s.origin.Block

	if event.Account == "" {
		event.Account = s.origin.Account
	}

	s.events = append(s.events, event)
}

// run executes op inside a fresh staging overlay and commits on success.
// On any error the overlay is discarded and no mutation reaches the store.
func (e *Engine) run(ctx context.Context, origin types.Origin, op func(ctx context.Context, s *session) error) error {
	tx := storage.NewTx(e.store)
	s := &session{
		repo:   models.New(tx, e.logger),
		cfg:    e.cfg,
		origin: origin,
	}

	if err := op(ctx, s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit operation: %w", err)
	}

	if e.emitter != nil && len(s.events) > 0 {
		e.emitter.Emit(ctx, s.events)
	}

	return nil
}
