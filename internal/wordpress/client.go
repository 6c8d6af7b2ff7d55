// Package wordpress implements the resource operations of the WordPress MCP
// server: posts, pages, users, media, comments, categories, tags and site
// info. Every operation returns a result carrying an Envelope; transport
// failures are converted at this boundary and never escape as Go errors.
package wordpress

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
)

// API is the transport surface the operations need. *base.Client implements it.
type API interface {
	Transport
	UploadMedia(ctx context.Context, src base.MediaSource) (any, error)
	Discover(ctx context.Context) (any, error)
	SiteURL() string
	Username() string
}

// Client binds one Resource per wp/v2 collection to a shared transport.
type Client struct {
	api    API
	logger *slog.Logger

	posts      *Resource[rawPost]
	pages      *Resource[rawPost]
	users      *Resource[rawUser]
	media      *Resource[rawMedia]
	comments   *Resource[rawComment]
	categories *Resource[rawTerm]
	tags       *Resource[rawTerm]
}

// NewClient creates the resource operations on top of api.
func NewClient(api API, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api:        api,
		logger:     logger,
		posts:      NewResource[rawPost](api, "post", "posts", "title", "content"),
		pages:      NewResource[rawPost](api, "page", "pages", "title", "content"),
		users:      NewResource[rawUser](api, "user", "users", "username", "email", "password"),
		media:      NewResource[rawMedia](api, "media item", "media"),
		comments:   NewResource[rawComment](api, "comment", "comments", "post", "content"),
		categories: NewResource[rawTerm](api, "category", "categories", "name"),
		tags:       NewResource[rawTerm](api, "tag", "tags", "name"),
	}
}

// editContext asks WordPress for the fields only shown to editors
// (username, email, roles).
func editContext() url.Values {
	return url.Values{"context": {"edit"}}
}

func deleteMessage(kind string, id int, out DeleteOutcome) string {
	label := fmt.Sprintf("%s #%d", strings.ToUpper(kind[:1])+kind[1:], id)
	switch {
	case out.Trashed:
		return label + " moved to trash"
	case out.Deleted:
		return label + " deleted"
	}
	return label + " was not deleted"
}

func deleteResult(kind string, id int, out DeleteOutcome) DeleteResult {
	return DeleteResult{
		Envelope: OK(deleteMessage(kind, id, out)),
		ID:       id,
		Deleted:  out.Deleted,
		Trashed:  out.Trashed,
	}
}
