package wordpress

import (
	"context"
	"fmt"
)

// GetCommentMCP fetches one comment.
func (c *Client) GetCommentMCP(ctx context.Context, args GetCommentArgs) (GetCommentResult, error) {
	if err := args.Validate(); err != nil {
		return GetCommentResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.comments.Get(ctx, args.CommentID, nil)
	if err != nil {
		return GetCommentResult{Envelope: Fail(err)}, nil
	}
	comment := projectComment(raw)
	return GetCommentResult{Envelope: OK(""), Comment: &comment}, nil
}

// ListCommentsMCP returns one page of comments.
func (c *Client) ListCommentsMCP(ctx context.Context, args ListCommentsArgs) (ListCommentsResult, error) {
	if err := args.Validate(); err != nil {
		return ListCommentsResult{Envelope: Fail(err)}, nil
	}
	query := pageQuery(args.PerPage, args.Page, DefaultPerPage)
	setIntFilter(query, "post", args.Post)
	setFilter(query, "status", args.Status)
	setFilter(query, "search", args.Search)

	items, err := c.comments.List(ctx, query)
	if err != nil {
		return ListCommentsResult{Envelope: Fail(err)}, nil
	}
	comments := projectAll(items, projectCommentItem)
	return ListCommentsResult{Envelope: OK(""), Count: len(comments), Comments: comments}, nil
}

// CreateCommentMCP posts a comment, or a reply when parent is set.
func (c *Client) CreateCommentMCP(ctx context.Context, args CreateCommentArgs) (SaveCommentResult, error) {
	if err := args.Validate(); err != nil {
		return SaveCommentResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}.
		Set("post", args.Post).
		Set("content", args.Content).
		Set("author_name", args.AuthorName)
	SetOptional(fields, "author_email", args.AuthorEmail)
	SetOptional(fields, "parent", args.Parent)

	raw, err := c.comments.Create(ctx, fields)
	if err != nil {
		return SaveCommentResult{Envelope: Fail(err)}, nil
	}
	comment := projectCommentSummary(raw)
	return SaveCommentResult{
		Envelope: OK(fmt.Sprintf("Comment #%d created on post #%d", comment.ID, comment.Post)),
		Comment:  &comment,
	}, nil
}

// UpdateCommentMCP edits a comment's text or moderation status.
func (c *Client) UpdateCommentMCP(ctx context.Context, args UpdateCommentArgs) (SaveCommentResult, error) {
	if err := args.Validate(); err != nil {
		return SaveCommentResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}
	SetOptional(fields, "content", args.Content)
	SetOptional(fields, "status", args.Status)

	raw, err := c.comments.Update(ctx, args.CommentID, fields)
	if err != nil {
		return SaveCommentResult{Envelope: Fail(err)}, nil
	}
	comment := projectCommentSummary(raw)
	return SaveCommentResult{
		Envelope: OK(fmt.Sprintf("Comment #%d updated", comment.ID)),
		Comment:  &comment,
	}, nil
}

// DeleteCommentMCP trashes a comment, or deletes it permanently with force.
func (c *Client) DeleteCommentMCP(ctx context.Context, args DeleteCommentArgs) (DeleteResult, error) {
	if err := args.Validate(); err != nil {
		return DeleteResult{Envelope: Fail(err)}, nil
	}
	out, err := c.comments.Delete(ctx, args.CommentID, args.Force)
	if err != nil {
		return DeleteResult{Envelope: Fail(err)}, nil
	}
	return deleteResult(c.comments.Kind(), args.CommentID, out), nil
}
