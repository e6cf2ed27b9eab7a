package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalyx/blogchain/internal/engine/types"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()
	engine, recorder := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "alice-writes")

	postID, err := engine.CreatePost(ctx, origin("alice"), blogID, hashB, types.RegularPostExtension())
	require.NoError(t, err)
	assert.Equal(t, types.PostID(1), postID)

	post, err := engine.Post(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, blogID, post.BlogID)
	assert.True(t, post.IsRegular())
	assert.Equal(t, hashB, post.IPFSHash)

	blog, err := engine.Blog(ctx, blogID)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), blog.PostsCount)

	ids, err := engine.PostIDsByBlog(ctx, blogID)
	require.NoError(t, err)
	assert.Equal(t, []types.PostID{postID}, ids)

	assert.Contains(t, recorder.kinds(), types.EventPostCreated)
}

func TestCreatePostGuards(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	_, err := engine.CreatePost(ctx, origin("alice"), 99, hashB, types.RegularPostExtension())
	assert.ErrorIs(t, err, types.ErrBlogNotFound)

	blogID := createTestBlog(t, engine, "alice", "alice-writes")

	_, err = engine.CreatePost(ctx, origin("alice"), blogID, "bad", types.RegularPostExtension())
	assert.ErrorIs(t, err, types.ErrInvalidIPFSHash)
}

func TestSharePost(t *testing.T) {
	t.Parallel()
	engine, recorder := setupTest(t)
	ctx := t.Context()

	aliceBlog := createTestBlog(t, engine, "alice", "alice-writes")
	originalID := createTestPost(t, engine, "alice", aliceBlog)
	bobBlog := createTestBlog(t, engine, "bob", "bob-reblogs")

	shareID, err := engine.CreatePost(ctx, origin("bob"), bobBlog, hashC, types.SharedPostExtension(originalID))
	require.NoError(t, err)

	share, err := engine.Post(ctx, shareID)
	require.NoError(t, err)
	assert.False(t, share.IsRegular())
	assert.Equal(t, originalID, share.Extension.OriginalPostID)

	// First share by bob scores the original and rewards alice.
	original, err := engine.Post(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), original.SharesCount)
	assert.Equal(t, int32(5), original.Score)

	alice, err := engine.SocialAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint32(6), alice.Reputation)

	shares, err := engine.SharesOfPost(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, []types.PostID{shareID}, shares)

	assert.Contains(t, recorder.kinds(), types.EventPostShared)
}

func TestSharePostScoresOnlyOnce(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	aliceBlog := createTestBlog(t, engine, "alice", "alice-writes")
	originalID := createTestPost(t, engine, "alice", aliceBlog)
	bobBlog := createTestBlog(t, engine, "bob", "bob-reblogs")

	_, err := engine.CreatePost(ctx, origin("bob"), bobBlog, hashC, types.SharedPostExtension(originalID))
	require.NoError(t, err)

	_, err = engine.CreatePost(ctx, origin("bob"), bobBlog, hashD, types.SharedPostExtension(originalID))
	require.NoError(t, err)

	original, err := engine.Post(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), original.SharesCount, "every share counts")
	assert.Equal(t, int32(5), original.Score, "only the first share by an account scores")

	alice, err := engine.SocialAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint32(6), alice.Reputation)
}

func TestShareOwnPost(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "alice-writes")
	originalID := createTestPost(t, engine, "alice", blogID)

	_, err := engine.CreatePost(ctx, origin("alice"), blogID, hashC, types.SharedPostExtension(originalID))
	require.NoError(t, err)

	original, err := engine.Post(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), original.SharesCount)
	assert.Equal(t, int32(0), original.Score, "sharing own content never scores")
}

func TestSharePostGuards(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "alice-writes")
	originalID := createTestPost(t, engine, "alice", blogID)

	shareID, err := engine.CreatePost(ctx, origin("alice"), blogID, hashC, types.SharedPostExtension(originalID))
	require.NoError(t, err)

	// Shares of shares are rejected.
	_, err = engine.CreatePost(ctx, origin("bob"), blogID, hashD, types.SharedPostExtension(shareID))
	assert.ErrorIs(t, err, types.ErrCannotShareSharedPost)

	_, err = engine.CreatePost(ctx, origin("bob"), blogID, hashD, types.SharedPostExtension(99))
	assert.ErrorIs(t, err, types.ErrOriginalPostNotFound)
}

func TestSharePostRollbackOnFailure(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "alice-writes")

	// The failing share allocates nothing and leaves no partial post behind.
	_, err := engine.CreatePost(ctx, origin("bob"), blogID, hashD, types.SharedPostExtension(99))
	require.ErrorIs(t, err, types.ErrOriginalPostNotFound)

	_, err = engine.Post(ctx, 1)
	assert.ErrorIs(t, err, types.ErrPostNotFound)

	blog, err := engine.Blog(ctx, blogID)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), blog.PostsCount)
}

func TestShareComment(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	aliceBlog := createTestBlog(t, engine, "alice", "alice-writes")
	postID := createTestPost(t, engine, "alice", aliceBlog)

	commentID, err := engine.CreateComment(ctx, origin("bob"), postID, nil, hashC)
	require.NoError(t, err)

	carolBlog := createTestBlog(t, engine, "carol", "carol-reblogs")

	_, err = engine.CreatePost(ctx, origin("carol"), carolBlog, hashD, types.SharedCommentExtension(commentID))
	require.NoError(t, err)

	comment, err := engine.Comment(ctx, commentID)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), comment.SharesCount)
	assert.Equal(t, int32(3), comment.Score)

	bob, err := engine.SocialAccount(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint32(4), bob.Reputation)

	shares, err := engine.SharesOfComment(ctx, commentID)
	require.NoError(t, err)
	assert.Len(t, shares, 1)

	_, err = engine.CreatePost(ctx, origin("carol"), carolBlog, hashA, types.SharedCommentExtension(99))
	assert.ErrorIs(t, err, types.ErrCommentNotFound)
}

func TestUpdatePost(t *testing.T) {
	t.Parallel()
	engine, recorder := setupTest(t)
	ctx := t.Context()

	firstBlog := createTestBlog(t, engine, "alice", "alice-writes")
	secondBlog, err := engine.CreateBlog(ctx, origin("alice"), "alice-drafts", hashA)
	require.NoError(t, err)

	postID := createTestPost(t, engine, "alice", firstBlog)

	err = engine.UpdatePost(ctx, origin("alice"), postID, types.PostUpdate{
		BlogID:   &secondBlog,
		IPFSHash: ptr(hashC),
	})
	require.NoError(t, err)

	post, err := engine.Post(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, secondBlog, post.BlogID)
	assert.Equal(t, hashC, post.IPFSHash)
	require.Len(t, post.EditHistory, 1)
	require.NotNil(t, post.EditHistory[0].OldBlogID)
	assert.Equal(t, firstBlog, *post.EditHistory[0].OldBlogID)

	// The post moved between blog indexes and counters.
	oldIDs, err := engine.PostIDsByBlog(ctx, firstBlog)
	require.NoError(t, err)
	assert.Empty(t, oldIDs)

	newIDs, err := engine.PostIDsByBlog(ctx, secondBlog)
	require.NoError(t, err)
	assert.Equal(t, []types.PostID{postID}, newIDs)

	first, err := engine.Blog(ctx, firstBlog)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), first.PostsCount)

	second, err := engine.Blog(ctx, secondBlog)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), second.PostsCount)

	assert.Contains(t, recorder.kinds(), types.EventPostUpdated)
}

func TestUpdatePostGuards(t *testing.T) {
	t.Parallel()
	engine, _ := setupTest(t)
	ctx := t.Context()

	blogID := createTestBlog(t, engine, "alice", "alice-writes")
	postID := createTestPost(t, engine, "alice", blogID)

	err := engine.UpdatePost(ctx, origin("alice"), postID, types.PostUpdate{})
	assert.ErrorIs(t, err, types.ErrPostNothingToUpdate)

	err = engine.UpdatePost(ctx, origin("alice"), postID, types.PostUpdate{
		BlogID:   &blogID,
		IPFSHash: ptr(hashB),
	})
	assert.ErrorIs(t, err, types.ErrPostNothingToUpdate)

	err = engine.UpdatePost(ctx, origin("bob"), postID, types.PostUpdate{IPFSHash: ptr(hashC)})
	assert.ErrorIs(t, err, types.ErrNotPostOwner)

	missing := types.BlogID(99)
	err = engine.UpdatePost(ctx, origin("alice"), postID, types.PostUpdate{BlogID: &missing})
	assert.ErrorIs(t, err, types.ErrBlogNotFound)
}

func ptr(s string) *string {
	return &s
}
