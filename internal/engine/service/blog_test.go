package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalyx/blogchain/internal/engine/types"
)

func TestCreateBlog(t *testing.T) {
	t.Parallel()
	engine, recorder := setupTest(t)
	ctx := t.Context()

	blogID, err := engine.CreateBlog(ctx, origin("alice"), "alice-writes", hashA)
	require.NoError(t, err)
	assert.Equal(t, types.BlogID(1), blogID)

	blog, err := engine.Blog(ctx, blogID)
	require.NoError(t, err)
	assert.Equal(t, "alice-writes", blog.Slug)
	assert.Equal(t, hashA, blog.IPFSHash)
	assert.Equal(t, types.AccountID("alice"), blog.Created.Account)
	assert.Equal(t, uint32(1), blog.FollowersCount, "creator follows their own blog")
	assert.Equal(t, int32(0), blog.Score, "self-follow does not score")

	// Creator's account reflects the self-follow without a reputation change.
	account, err := engine.SocialAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint16(1), account.FollowingBlogsCount)
	assert.Equal(t, uint32(1), account.Reputation)

	resolved, found, err := engine.BlogIDBySlug(ctx, "alice-writes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, blogID, resolved)

	owned, err := engine.BlogIDsByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []types.BlogID{blogID}, owned)

	assert.Contains(t, recorder.kinds(), types.EventBlogCreated)
	assert.Contains(t, recorder.kinds(), types.EventBlogFollowed)
}

func TestCreateBlogIDSequence(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	first, err := engine.CreateBlog(ctx, origin("alice"), "first-blog", hashA)
	require.NoError(t, err)

	second, err := engine.CreateBlog(ctx, origin("alice"), "second-blog", hashA)
	require.NoError(t, err)

	assert.Equal(t, types.BlogID(1), first)
	assert.Equal(t, types.BlogID(2), second)

	next, err := engine.NextBlogID(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlogID(3), next)
}

func TestCreateBlogValidation(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	_, err := engine.CreateBlog(ctx, origin("alice"), "abc", hashA)
	assert.ErrorIs(t, err, types.ErrBlogSlugTooShort)

	_, err = engine.CreateBlog(ctx, origin("alice"), strings.Repeat("x", 51), hashA)
	assert.ErrorIs(t, err, types.ErrBlogSlugTooLong)

	_, err = engine.CreateBlog(ctx, origin("alice"), "alice-writes", "Qmshort")
	assert.ErrorIs(t, err, types.ErrInvalidIPFSHash)

	// 0, O, I and l are outside the base58 alphabet.
	bad := "Qm" + strings.Repeat("0", 44)
	_, err = engine.CreateBlog(ctx, origin("alice"), "alice-writes", bad)
	assert.ErrorIs(t, err, types.ErrInvalidIPFSHash)
}

func TestCreateBlogDuplicateSlug(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	createTestBlog(t, engine, "alice", "shared-slug")

	_, err := engine.CreateBlog(ctx, origin("bob"), "shared-slug", hashA)
	assert.ErrorIs(t, err, types.ErrBlogSlugNotUnique)

	// The failed create must not consume an id.
	next, err := engine.NextBlogID(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlogID(2), next)
}

func TestUpdateBlog(t *testing.T) {
	t.Parallel()
	engine, recorder := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "old-slug")

	newSlug := "new-slug"
	writers := []types.AccountID{"bob"}
	err := engine.UpdateBlog(ctx, origin("alice"), blogID, types.BlogUpdate{
		Slug:    &newSlug,
		Writers: &writers,
	})
	require.NoError(t, err)

	blog, err := engine.Blog(ctx, blogID)
	require.NoError(t, err)
	assert.Equal(t, "new-slug", blog.Slug)
	assert.Equal(t, writers, blog.Writers)
	require.NotNil(t, blog.Updated)

	require.Len(t, blog.EditHistory, 1)
	require.NotNil(t, blog.EditHistory[0].OldSlug)
	assert.Equal(t, "old-slug", *blog.EditHistory[0].OldSlug)

	// The old slug is released, the new one resolves.
	_, found, err := engine.BlogIDBySlug(ctx, "old-slug")
	require.NoError(t, err)
	assert.False(t, found)

	resolved, found, err := engine.BlogIDBySlug(ctx, "new-slug")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, blogID, resolved)

	assert.Contains(t, recorder.kinds(), types.EventBlogUpdated)
}

func TestUpdateBlogGuards(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "alice-writes")

	err := engine.UpdateBlog(ctx, origin("alice"), blogID, types.BlogUpdate{})
	assert.ErrorIs(t, err, types.ErrBlogNothingToUpdate)

	// Fields equal to the current values count as nothing to update.
	sameSlug := "alice-writes"
	sameHash := hashA
	err = engine.UpdateBlog(ctx, origin("alice"), blogID, types.BlogUpdate{
		Slug:     &sameSlug,
		IPFSHash: &sameHash,
	})
	assert.ErrorIs(t, err, types.ErrBlogNothingToUpdate)

	newSlug := "bob-tries"
	err = engine.UpdateBlog(ctx, origin("bob"), blogID, types.BlogUpdate{Slug: &newSlug})
	assert.ErrorIs(t, err, types.ErrNotBlogOwner)

	err = engine.UpdateBlog(ctx, origin("alice"), 99, types.BlogUpdate{Slug: &newSlug})
	assert.ErrorIs(t, err, types.ErrBlogNotFound)
}
