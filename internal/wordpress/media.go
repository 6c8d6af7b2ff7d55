package wordpress

import (
	"context"
	"fmt"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
)

// UploadMediaMCP uploads a file from exactly one of source_url or local_path.
// A missing or doubled source fails before any network call.
func (c *Client) UploadMediaMCP(ctx context.Context, args UploadMediaArgs) (MediaResult, error) {
	if err := args.Validate(); err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.api.UploadMedia(ctx, base.MediaSource{
		SourceURL: args.SourceURL,
		LocalPath: args.LocalPath,
		Filename:  args.Filename,
		Title:     args.Title,
		AltText:   args.AltText,
		Caption:   args.Caption,
	})
	if err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}
	record, err := decodeRecord[rawMedia](c.media.Kind(), raw)
	if err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}
	media := projectMedia(record)
	c.logger.Info("Media uploaded", "id", media.ID, "mime_type", media.MimeType)
	return MediaResult{Envelope: OK("Media uploaded"), Media: &media}, nil
}

// GetMediaMCP fetches one attachment.
func (c *Client) GetMediaMCP(ctx context.Context, args GetMediaArgs) (MediaResult, error) {
	if err := args.Validate(); err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.media.Get(ctx, args.MediaID, nil)
	if err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}
	media := projectMedia(raw)
	return MediaResult{Envelope: OK(""), Media: &media}, nil
}

// ListMediaMCP returns one page of the media library.
func (c *Client) ListMediaMCP(ctx context.Context, args ListMediaArgs) (ListMediaResult, error) {
	if err := args.Validate(); err != nil {
		return ListMediaResult{Envelope: Fail(err)}, nil
	}
	query := pageQuery(args.PerPage, args.Page, DefaultPerPage)
	setFilter(query, "media_type", args.MediaType)
	setFilter(query, "search", args.Search)

	items, err := c.media.List(ctx, query)
	if err != nil {
		return ListMediaResult{Envelope: Fail(err)}, nil
	}
	media := projectAll(items, projectMedia)
	return ListMediaResult{Envelope: OK(""), Count: len(media), Media: media}, nil
}

// UpdateMediaMCP edits attachment metadata.
func (c *Client) UpdateMediaMCP(ctx context.Context, args UpdateMediaArgs) (MediaResult, error) {
	if err := args.Validate(); err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}
	SetOptional(fields, "title", args.Title)
	SetOptional(fields, "alt_text", args.AltText)
	SetOptional(fields, "caption", args.Caption)
	SetOptional(fields, "description", args.Description)

	raw, err := c.media.Update(ctx, args.MediaID, fields)
	if err != nil {
		return MediaResult{Envelope: Fail(err)}, nil
	}
	media := projectMedia(raw)
	return MediaResult{
		Envelope: OK(fmt.Sprintf("Media #%d updated", media.ID)),
		Media:    &media,
	}, nil
}
