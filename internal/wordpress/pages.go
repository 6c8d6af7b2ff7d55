package wordpress

import (
	"context"
	"fmt"

	"github.com/olgasafonova/wordpress-mcp-server/metrics"
)

// CreatePageMCP creates a page. Status defaults to publish.
func (c *Client) CreatePageMCP(ctx context.Context, args CreatePageArgs) (SavePageResult, error) {
	if err := args.Validate(); err != nil {
		return SavePageResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}.
		Set("title", args.Title).
		Set("content", args.Content).
		Set("status", DefaultPostStatus)
	SetOptional(fields, "status", args.Status)
	SetOptional(fields, "excerpt", args.Excerpt)
	SetOptional(fields, "parent", args.Parent)
	SetOptional(fields, "template", args.Template)
	metrics.RecordContentSize("create_page", len(args.Content))

	raw, err := c.pages.Create(ctx, fields)
	if err != nil {
		return SavePageResult{Envelope: Fail(err)}, nil
	}
	page := projectContentSummary(raw)
	return SavePageResult{
		Envelope: OK(fmt.Sprintf("Page %q created", page.Title)),
		Page:     &page,
	}, nil
}

// GetPageMCP fetches one page, optionally reduced to plain text.
func (c *Client) GetPageMCP(ctx context.Context, args GetPageArgs) (GetPageResult, error) {
	if err := args.Validate(); err != nil {
		return GetPageResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.pages.Get(ctx, args.PageID, nil)
	if err != nil {
		return GetPageResult{Envelope: Fail(err)}, nil
	}
	page := projectPage(raw)
	if wantText(args.Format) {
		page.Title = HTMLToText(page.Title)
		page.Content = HTMLToText(page.Content)
		page.Excerpt = HTMLToText(page.Excerpt)
	}
	return GetPageResult{Envelope: OK(""), Page: &page}, nil
}

// ListPagesMCP returns one page of pages.
func (c *Client) ListPagesMCP(ctx context.Context, args ListPagesArgs) (ListPagesResult, error) {
	if err := args.Validate(); err != nil {
		return ListPagesResult{Envelope: Fail(err)}, nil
	}
	query := pageQuery(args.PerPage, args.Page, DefaultPerPage)
	setFilter(query, "status", args.Status)
	setFilter(query, "search", args.Search)
	setIntFilter(query, "parent", args.Parent)

	items, err := c.pages.List(ctx, query)
	if err != nil {
		return ListPagesResult{Envelope: Fail(err)}, nil
	}
	pages := projectAll(items, projectPageItem)
	return ListPagesResult{Envelope: OK(""), Count: len(pages), Pages: pages}, nil
}

// UpdatePageMCP sends only the supplied fields.
func (c *Client) UpdatePageMCP(ctx context.Context, args UpdatePageArgs) (SavePageResult, error) {
	if err := args.Validate(); err != nil {
		return SavePageResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}
	SetOptional(fields, "title", args.Title)
	SetOptional(fields, "content", args.Content)
	SetOptional(fields, "status", args.Status)
	SetOptional(fields, "excerpt", args.Excerpt)
	SetOptional(fields, "parent", args.Parent)
	SetOptional(fields, "template", args.Template)
	if args.Content != nil {
		metrics.RecordContentSize("update_page", len(*args.Content))
	}

	raw, err := c.pages.Update(ctx, args.PageID, fields)
	if err != nil {
		return SavePageResult{Envelope: Fail(err)}, nil
	}
	page := projectContentSummary(raw)
	return SavePageResult{
		Envelope: OK(fmt.Sprintf("Page #%d updated", page.ID)),
		Page:     &page,
	}, nil
}

// DeletePageMCP trashes a page, or deletes it permanently with force.
func (c *Client) DeletePageMCP(ctx context.Context, args DeletePageArgs) (DeleteResult, error) {
	if err := args.Validate(); err != nil {
		return DeleteResult{Envelope: Fail(err)}, nil
	}
	out, err := c.pages.Delete(ctx, args.PageID, args.Force)
	if err != nil {
		return DeleteResult{Envelope: Fail(err)}, nil
	}
	return deleteResult(c.pages.Kind(), args.PageID, out), nil
}
