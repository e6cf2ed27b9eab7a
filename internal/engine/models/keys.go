package models

import (
	"strconv"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// Key construction for every entity, counter, index and ledger. Keys are
// flat strings with ':'-separated segments; identifiers supplied by the host
// are opaque and used verbatim.
const (
	keyNextBlogID     = "next_blog_id"
	keyNextPostID     = "next_post_id"
	keyNextCommentID  = "next_comment_id"
	keyNextReactionID = "next_reaction_id"
)

func u64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func blogKey(id types.BlogID) string {
	return "blog:" + u64(uint64(id))
}

func blogIDBySlugKey(slug string) string {
	return "blog_slug:" + slug
}

func blogIDsByOwnerKey(owner types.AccountID) string {
	return "blog_ids_owner:" + string(owner)
}

func postKey(id types.PostID) string {
	return "post:" + u64(uint64(id))
}

func postIDsByBlogKey(id types.BlogID) string {
	return "post_ids_blog:" + u64(uint64(id))
}

func sharedPostIDsByPostKey(id types.PostID) string {
	return "shared_post_ids_post:" + u64(uint64(id))
}

func sharedPostIDsByCommentKey(id types.CommentID) string {
	return "shared_post_ids_comment:" + u64(uint64(id))
}

func postSharesByAccountKey(account types.AccountID, id types.PostID) string {
	return "post_shares_account:" + string(account) + ":" + u64(uint64(id))
}

func commentSharesByAccountKey(account types.AccountID, id types.CommentID) string {
	return "comment_shares_account:" + string(account) + ":" + u64(uint64(id))
}

func commentKey(id types.CommentID) string {
	return "comment:" + u64(uint64(id))
}

func commentIDsByPostKey(id types.PostID) string {
	return "comment_ids_post:" + u64(uint64(id))
}

func reactionKey(id types.ReactionID) string {
	return "reaction:" + u64(uint64(id))
}

func reactionIDsByPostKey(id types.PostID) string {
	return "reaction_ids_post:" + u64(uint64(id))
}

func reactionIDsByCommentKey(id types.CommentID) string {
	return "reaction_ids_comment:" + u64(uint64(id))
}

func postReactionByAccountKey(account types.AccountID, id types.PostID) string {
	return "post_reaction_account:" + string(account) + ":" + u64(uint64(id))
}

func commentReactionByAccountKey(account types.AccountID, id types.CommentID) string {
	return "comment_reaction_account:" + string(account) + ":" + u64(uint64(id))
}

func accountKey(id types.AccountID) string {
	return "social_account:" + string(id)
}

func accountByUsernameKey(username string) string {
	return "account_username:" + username
}

func blogsFollowedByAccountKey(account types.AccountID) string {
	return "blogs_followed_account:" + string(account)
}

func blogFollowersKey(id types.BlogID) string {
	return "blog_followers:" + u64(uint64(id))
}

func blogFollowedByAccountKey(account types.AccountID, id types.BlogID) string {
	return "blog_followed_account:" + string(account) + ":" + u64(uint64(id))
}

func accountsFollowedByAccountKey(account types.AccountID) string {
	return "accounts_followed_account:" + string(account)
}

func accountFollowersKey(account types.AccountID) string {
	return "account_followers:" + string(account)
}

func accountFollowedByAccountKey(follower, followed types.AccountID) string {
	return "account_followed_account:" + string(follower) + ":" + string(followed)
}

func postScoreByAccountKey(account types.AccountID, id types.PostID, action enum.ScoringAction) string {
	return "post_score_account:" + string(account) + ":" + u64(uint64(id)) + ":" + action.String()
}

func commentScoreByAccountKey(account types.AccountID, id types.CommentID, action enum.ScoringAction) string {
	return "comment_score_account:" + string(account) + ":" + u64(uint64(id)) + ":" + action.String()
}

func reputationDiffKey(scorer, subject types.AccountID, action enum.ScoringAction) string {
	return "reputation_diff:" + string(scorer) + ":" + string(subject) + ":" + action.String()
}
