package wordpress

import (
	"context"
	"fmt"

	"github.com/olgasafonova/wordpress-mcp-server/metrics"
)

// DefaultPostStatus is used when create is called without a status.
const DefaultPostStatus = "publish"

// CreatePostMCP creates a post. Status defaults to publish.
func (c *Client) CreatePostMCP(ctx context.Context, args CreatePostArgs) (SavePostResult, error) {
	if err := args.Validate(); err != nil {
		return SavePostResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}.
		Set("title", args.Title).
		Set("content", args.Content).
		Set("status", DefaultPostStatus)
	SetOptional(fields, "status", args.Status)
	SetOptional(fields, "excerpt", args.Excerpt)
	SetList(fields, "categories", args.Categories)
	SetList(fields, "tags", args.Tags)
	SetOptional(fields, "featured_media", args.FeaturedMedia)
	metrics.RecordContentSize("create_post", len(args.Content))

	raw, err := c.posts.Create(ctx, fields)
	if err != nil {
		return SavePostResult{Envelope: Fail(err)}, nil
	}
	post := projectContentSummary(raw)
	return SavePostResult{
		Envelope: OK(fmt.Sprintf("Post %q created", post.Title)),
		Post:     &post,
	}, nil
}

// GetPostMCP fetches one post, optionally reduced to plain text.
func (c *Client) GetPostMCP(ctx context.Context, args GetPostArgs) (GetPostResult, error) {
	if err := args.Validate(); err != nil {
		return GetPostResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.posts.Get(ctx, args.PostID, nil)
	if err != nil {
		return GetPostResult{Envelope: Fail(err)}, nil
	}
	post := projectPost(raw)
	if wantText(args.Format) {
		post.Title = HTMLToText(post.Title)
		post.Content = HTMLToText(post.Content)
		post.Excerpt = HTMLToText(post.Excerpt)
	}
	return GetPostResult{Envelope: OK(""), Post: &post}, nil
}

// ListPostsMCP returns one page of posts.
func (c *Client) ListPostsMCP(ctx context.Context, args ListPostsArgs) (ListPostsResult, error) {
	if err := args.Validate(); err != nil {
		return ListPostsResult{Envelope: Fail(err)}, nil
	}
	query := pageQuery(args.PerPage, args.Page, DefaultPerPage)
	setFilter(query, "status", args.Status)
	setFilter(query, "search", args.Search)
	setListFilter(query, "categories", args.Categories)

	items, err := c.posts.List(ctx, query)
	if err != nil {
		return ListPostsResult{Envelope: Fail(err)}, nil
	}
	posts := projectAll(items, projectPostItem)
	return ListPostsResult{Envelope: OK(""), Count: len(posts), Posts: posts}, nil
}

// UpdatePostMCP sends only the supplied fields.
func (c *Client) UpdatePostMCP(ctx context.Context, args UpdatePostArgs) (SavePostResult, error) {
	if err := args.Validate(); err != nil {
		return SavePostResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}
	SetOptional(fields, "title", args.Title)
	SetOptional(fields, "content", args.Content)
	SetOptional(fields, "status", args.Status)
	SetOptional(fields, "excerpt", args.Excerpt)
	SetList(fields, "categories", args.Categories)
	SetList(fields, "tags", args.Tags)
	SetOptional(fields, "featured_media", args.FeaturedMedia)
	if args.Content != nil {
		metrics.RecordContentSize("update_post", len(*args.Content))
	}

	raw, err := c.posts.Update(ctx, args.PostID, fields)
	if err != nil {
		return SavePostResult{Envelope: Fail(err)}, nil
	}
	post := projectContentSummary(raw)
	return SavePostResult{
		Envelope: OK(fmt.Sprintf("Post #%d updated", post.ID)),
		Post:     &post,
	}, nil
}

// DeletePostMCP trashes a post, or deletes it permanently with force.
func (c *Client) DeletePostMCP(ctx context.Context, args DeletePostArgs) (DeleteResult, error) {
	if err := args.Validate(); err != nil {
		return DeleteResult{Envelope: Fail(err)}, nil
	}
	out, err := c.posts.Delete(ctx, args.PostID, args.Force)
	if err != nil {
		return DeleteResult{Envelope: Fail(err)}, nil
	}
	return deleteResult(c.posts.Kind(), args.PostID, out), nil
}
