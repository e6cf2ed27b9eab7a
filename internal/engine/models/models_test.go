package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/models"
	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

func setupTest(t *testing.T) *models.Repository {
	t.Helper()
	return models.New(storage.NewMemoryStore(), zap.NewNop())
}

func TestAllocateIDSequence(t *testing.T) {
	t.Parallel()
	repo := setupTest(t)
	ctx := t.Context()

	first, err := repo.Blogs.AllocateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlogID(1), first)

	second, err := repo.Blogs.AllocateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlogID(2), second)

	next, err := repo.Blogs.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.BlogID(3), next)

	// Counters are independent per entity kind.
	postID, err := repo.Posts.AllocateID(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.PostID(1), postID)
}

func TestBlogRoundTrip(t *testing.T) {
	t.Parallel()
	repo := setupTest(t)
	ctx := t.Context()

	_, err := repo.Blogs.Get(ctx, 1)
	assert.ErrorIs(t, err, types.ErrBlogNotFound)

	blog := &types.Blog{
		ID:      1,
		Created: types.Change{Account: "alice", Block: 1, Time: 1},
		Slug:    "alice-writes",
	}
	require.NoError(t, repo.Blogs.Save(ctx, blog))

	loaded, err := repo.Blogs.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, blog, loaded)
}

func TestSlugIndex(t *testing.T) {
	t.Parallel()
	repo := setupTest(t)
	ctx := t.Context()

	taken, err := repo.Blogs.SlugTaken(ctx, "alice-writes")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, repo.Blogs.SetSlug(ctx, "alice-writes", 1))

	id, found, err := repo.Blogs.IDBySlug(ctx, "alice-writes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, types.BlogID(1), id)

	require.NoError(t, repo.Blogs.RemoveSlug(ctx, "alice-writes"))

	taken, err = repo.Blogs.SlugTaken(ctx, "alice-writes")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestFollowLists(t *testing.T) {
	t.Parallel()
	repo := setupTest(t)
	ctx := t.Context()

	require.NoError(t, repo.Follows.AddBlogFollower(ctx, "alice", 1))
	require.NoError(t, repo.Follows.AddBlogFollower(ctx, "bob", 1))

	followed, err := repo.Follows.BlogFollowedByAccount(ctx, "alice", 1)
	require.NoError(t, err)
	assert.True(t, followed)

	followers, err := repo.Follows.BlogFollowers(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.AccountID{"alice", "bob"}, followers)

	require.NoError(t, repo.Follows.RemoveBlogFollower(ctx, "alice", 1))

	followed, err = repo.Follows.BlogFollowedByAccount(ctx, "alice", 1)
	require.NoError(t, err)
	assert.False(t, followed)

	followers, err = repo.Follows.BlogFollowers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []types.AccountID{"bob"}, followers)
}

func TestScoreLedger(t *testing.T) {
	t.Parallel()
	repo := setupTest(t)
	ctx := t.Context()

	_, found, err := repo.Scores.ReputationDiff(ctx, "bob", "alice", enum.ScoringActionFollowBlog)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Scores.SetReputationDiff(ctx, "bob", "alice", enum.ScoringActionFollowBlog, -7))

	diff, found, err := repo.Scores.ReputationDiff(ctx, "bob", "alice", enum.ScoringActionFollowBlog)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int16(-7), diff)

	// A recorded zero diff still counts as applied.
	require.NoError(t, repo.Scores.SetPostScoreByAccount(ctx, "bob", 1, enum.ScoringActionUpvotePost, 0))

	diff, found, err = repo.Scores.PostScoreByAccount(ctx, "bob", 1, enum.ScoringActionUpvotePost)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int16(0), diff)

	require.NoError(t, repo.Scores.RemovePostScoreByAccount(ctx, "bob", 1, enum.ScoringActionUpvotePost))

	_, found, err = repo.Scores.PostScoreByAccount(ctx, "bob", 1, enum.ScoringActionUpvotePost)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAccountGetOrNew(t *testing.T) {
	t.Parallel()
	repo := setupTest(t)
	ctx := t.Context()

	_, err := repo.Accounts.Get(ctx, "alice")
	assert.ErrorIs(t, err, types.ErrSocialAccountNotFound)

	account, err := repo.Accounts.GetOrNew(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, types.MinReputation, account.Reputation)

	account.Reputation = 42
	require.NoError(t, repo.Accounts.Save(ctx, account))

	loaded, err := repo.Accounts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), loaded.Reputation)
}
