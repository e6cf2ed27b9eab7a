package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
	"github.com/robalyx/blogchain/internal/setup"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "engine",
		Usage: "Run the blogchain social engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "Use an in-memory store instead of the data directory",
			},
			&cli.BoolFlag{
				Name:  "no-events",
				Usage: "Disable the Redis event publisher",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable development logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "Populate the store with a demo dataset",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(ctx, c, seed)
				},
			},
			{
				Name:  "stats",
				Usage: "Print entity counters from the store",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(ctx, c, stats)
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

func withApp(ctx context.Context, c *cli.Command, fn func(ctx context.Context, app *setup.App) error) error {
	app, err := setup.InitializeApp(ctx, setup.Options{
		InMemory: c.Bool("memory"),
		NoEvents: c.Bool("no-events"),
		Debug:    c.Bool("debug"),
	})
	if err != nil {
		return err
	}
	defer app.Cleanup()

	return fn(ctx, app)
}

// seed walks a small scenario through the engine: two accounts, a blog with
// a post and a comment, votes and follows in both directions.
func seed(ctx context.Context, app *setup.App) error {
	engine := app.Engine
	now := time.Now().Unix()

	alice := types.Origin{Account: "alice", Block: 1, Time: now}
	bob := types.Origin{Account: "bob", Block: 1, Time: now}

	blogID, err := engine.CreateBlog(ctx, alice, "alice-on-distributed-systems",
		"QmWWQSuPMS6aXCbZKpEjPHPUZN2NjB3YrhJTHsV4X3vb2t")
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	postID, err := engine.CreatePost(ctx, alice, blogID,
		"QmbWqxBEKC3P8tqsKc98xmWNzrzDtRLMiMPL8wBuTGsMnR", types.RegularPostExtension())
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	commentID, err := engine.CreateComment(ctx, bob, postID, nil,
		"QmT78zSuBmuS4z925WZfrqQ1qHaJ56DQaTfyMUF7F8ff5o")
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if _, err := engine.CreatePostReaction(ctx, bob, postID, enum.ReactionKindUpvote); err != nil {
		return fmt.Errorf("failed to upvote post: %w", err)
	}

	if _, err := engine.CreateCommentReaction(ctx, alice, commentID, enum.ReactionKindUpvote); err != nil {
		return fmt.Errorf("failed to upvote comment: %w", err)
	}

	if err := engine.FollowBlog(ctx, bob, blogID); err != nil {
		return fmt.Errorf("failed to follow blog: %w", err)
	}

	if err := engine.FollowAccount(ctx, bob, "alice"); err != nil {
		return fmt.Errorf("failed to follow account: %w", err)
	}

	app.Logger.Info("Seeded demo dataset",
		zap.Uint64("blogId", uint64(blogID)),
		zap.Uint64("postId", uint64(postID)),
		zap.Uint64("commentId", uint64(commentID)))

	return nil
}

// stats prints the id high-water marks and the reputation of the seeded
// accounts.
func stats(ctx context.Context, app *setup.App) error {
	engine := app.Engine

	nextBlogID, err := engine.NextBlogID(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("blogs created: %d\n", nextBlogID-1)

	for _, id := range []types.AccountID{"alice", "bob"} {
		account, err := engine.SocialAccount(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s: reputation=%d followers=%d following_blogs=%d\n",
			id, account.Reputation, account.FollowersCount, account.FollowingBlogsCount)
	}

	return nil
}
