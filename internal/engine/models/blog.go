package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// BlogModel handles blog persistence and the slug and owner indexes.
type BlogModel struct {
	store  storage.Store
	logger *zap.Logger
}

// Get returns the blog by id.
func (m *BlogModel) Get(ctx context.Context, id types.BlogID) (*types.Blog, error) {
	blog, ok, err := getJSON[types.Blog](ctx, m.store, blogKey(id))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, types.ErrBlogNotFound
	}

	return &blog, nil
}

// Exists reports whether a blog with the id is stored.
func (m *BlogModel) Exists(ctx context.Context, id types.BlogID) (bool, error) {
	return flagExists(ctx, m.store, blogKey(id))
}

// Save persists the blog under its id.
func (m *BlogModel) Save(ctx context.Context, blog *types.Blog) error {
	return setJSON(ctx, m.store, blogKey(blog.ID), blog)
}

// AllocateID returns the next blog id and advances the counter.
func (m *BlogModel) AllocateID(ctx context.Context) (types.BlogID, error) {
	id, err := allocateID(ctx, m.store, keyNextBlogID)
	if err != nil {
		return 0, err
	}

	return types.BlogID(id), nil
}

// NextID returns the next blog id without advancing the counter.
func (m *BlogModel) NextID(ctx context.Context) (types.BlogID, error) {
	id, err := peekID(ctx, m.store, keyNextBlogID)
	if err != nil {
		return 0, err
	}

	return types.BlogID(id), nil
}

// IDBySlug resolves a slug to a blog id.
func (m *BlogModel) IDBySlug(ctx context.Context, slug string) (types.BlogID, bool, error) {
	return getJSON[types.BlogID](ctx, m.store, blogIDBySlugKey(slug))
}

// SlugTaken reports whether the slug is already mapped to a blog.
func (m *BlogModel) SlugTaken(ctx context.Context, slug string) (bool, error) {
	return flagExists(ctx, m.store, blogIDBySlugKey(slug))
}

// SetSlug maps the slug to the blog id.
func (m *BlogModel) SetSlug(ctx context.Context, slug string, id types.BlogID) error {
	return setJSON(ctx, m.store, blogIDBySlugKey(slug), id)
}

// RemoveSlug drops the slug mapping.
func (m *BlogModel) RemoveSlug(ctx context.Context, slug string) error {
	return m.store.Remove(ctx, blogIDBySlugKey(slug))
}

// IDsByOwner returns the ids of blogs created by the owner.
func (m *BlogModel) IDsByOwner(ctx context.Context, owner types.AccountID) ([]types.BlogID, error) {
	return getList[types.BlogID](ctx, m.store, blogIDsByOwnerKey(owner))
}

// AddIDToOwner appends the blog id to the owner's blog list.
func (m *BlogModel) AddIDToOwner(ctx context.Context, owner types.AccountID, id types.BlogID) error {
	return appendToList(ctx, m.store, blogIDsByOwnerKey(owner), id)
}
