package wordpress

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func termQuery(perPage, page *int, search *string, hideEmpty *bool) url.Values {
	query := pageQuery(perPage, page, DefaultTermPerPage)
	setFilter(query, "search", search)
	if hideEmpty != nil {
		query.Set("hide_empty", strconv.FormatBool(*hideEmpty))
	}
	return query
}

func termFields(name, description, slug *string) Fields {
	fields := Fields{}
	SetOptional(fields, "name", name)
	SetOptional(fields, "description", description)
	SetOptional(fields, "slug", slug)
	return fields
}

// ==================== Categories ====================

// ListCategoriesMCP returns one page of categories (100 per page by default).
func (c *Client) ListCategoriesMCP(ctx context.Context, args ListCategoriesArgs) (ListCategoriesResult, error) {
	if err := args.Validate(); err != nil {
		return ListCategoriesResult{Envelope: Fail(err)}, nil
	}
	query := termQuery(args.PerPage, args.Page, args.Search, args.HideEmpty)
	setIntFilter(query, "parent", args.Parent)

	items, err := c.categories.List(ctx, query)
	if err != nil {
		return ListCategoriesResult{Envelope: Fail(err)}, nil
	}
	categories := projectAll(items, projectCategory)
	return ListCategoriesResult{Envelope: OK(""), Count: len(categories), Categories: categories}, nil
}

// GetCategoryMCP fetches one category.
func (c *Client) GetCategoryMCP(ctx context.Context, args GetCategoryArgs) (GetCategoryResult, error) {
	if err := args.Validate(); err != nil {
		return GetCategoryResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.categories.Get(ctx, args.CategoryID, nil)
	if err != nil {
		return GetCategoryResult{Envelope: Fail(err)}, nil
	}
	category := projectCategory(raw)
	return GetCategoryResult{Envelope: OK(""), Category: &category}, nil
}

// CreateCategoryMCP creates a category.
func (c *Client) CreateCategoryMCP(ctx context.Context, args CreateCategoryArgs) (SaveCategoryResult, error) {
	if err := args.Validate(); err != nil {
		return SaveCategoryResult{Envelope: Fail(err)}, nil
	}
	fields := termFields(&args.Name, args.Description, args.Slug)
	SetOptional(fields, "parent", args.Parent)

	raw, err := c.categories.Create(ctx, fields)
	if err != nil {
		return SaveCategoryResult{Envelope: Fail(err)}, nil
	}
	category := projectTermSummary(raw)
	return SaveCategoryResult{
		Envelope: OK(fmt.Sprintf("Category %q created", category.Name)),
		Category: &category,
	}, nil
}

// UpdateCategoryMCP sends only the supplied fields.
func (c *Client) UpdateCategoryMCP(ctx context.Context, args UpdateCategoryArgs) (SaveCategoryResult, error) {
	if err := args.Validate(); err != nil {
		return SaveCategoryResult{Envelope: Fail(err)}, nil
	}
	fields := termFields(args.Name, args.Description, args.Slug)
	SetOptional(fields, "parent", args.Parent)

	raw, err := c.categories.Update(ctx, args.CategoryID, fields)
	if err != nil {
		return SaveCategoryResult{Envelope: Fail(err)}, nil
	}
	category := projectTermSummary(raw)
	return SaveCategoryResult{
		Envelope: OK(fmt.Sprintf("Category #%d updated", category.ID)),
		Category: &category,
	}, nil
}

// ==================== Tags ====================

// ListTagsMCP returns one page of tags (100 per page by default).
func (c *Client) ListTagsMCP(ctx context.Context, args ListTagsArgs) (ListTagsResult, error) {
	if err := args.Validate(); err != nil {
		return ListTagsResult{Envelope: Fail(err)}, nil
	}
	items, err := c.tags.List(ctx, termQuery(args.PerPage, args.Page, args.Search, args.HideEmpty))
	if err != nil {
		return ListTagsResult{Envelope: Fail(err)}, nil
	}
	tags := projectAll(items, projectTag)
	return ListTagsResult{Envelope: OK(""), Count: len(tags), Tags: tags}, nil
}

// GetTagMCP fetches one tag.
func (c *Client) GetTagMCP(ctx context.Context, args GetTagArgs) (GetTagResult, error) {
	if err := args.Validate(); err != nil {
		return GetTagResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.tags.Get(ctx, args.TagID, nil)
	if err != nil {
		return GetTagResult{Envelope: Fail(err)}, nil
	}
	tag := projectTag(raw)
	return GetTagResult{Envelope: OK(""), Tag: &tag}, nil
}

// CreateTagMCP creates a tag.
func (c *Client) CreateTagMCP(ctx context.Context, args CreateTagArgs) (SaveTagResult, error) {
	if err := args.Validate(); err != nil {
		return SaveTagResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.tags.Create(ctx, termFields(&args.Name, args.Description, args.Slug))
	if err != nil {
		return SaveTagResult{Envelope: Fail(err)}, nil
	}
	tag := projectTermSummary(raw)
	return SaveTagResult{
		Envelope: OK(fmt.Sprintf("Tag %q created", tag.Name)),
		Tag:      &tag,
	}, nil
}

// UpdateTagMCP sends only the supplied fields.
func (c *Client) UpdateTagMCP(ctx context.Context, args UpdateTagArgs) (SaveTagResult, error) {
	if err := args.Validate(); err != nil {
		return SaveTagResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.tags.Update(ctx, args.TagID, termFields(args.Name, args.Description, args.Slug))
	if err != nil {
		return SaveTagResult{Envelope: Fail(err)}, nil
	}
	tag := projectTermSummary(raw)
	return SaveTagResult{
		Envelope: OK(fmt.Sprintf("Tag #%d updated", tag.ID)),
		Tag:      &tag,
	}, nil
}
