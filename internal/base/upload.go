package base

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
	"github.com/olgasafonova/wordpress-mcp-server/metrics"
)

const (
	// MaxUploadSize caps the bytes read from a media source
	MaxUploadSize = 50 * 1024 * 1024

	// DefaultContentType is used when the extension is unknown
	DefaultContentType = "application/octet-stream"
)

// MediaSource names the bytes to upload. Exactly one of SourceURL and
// LocalPath must be set.
type MediaSource struct {
	SourceURL string
	LocalPath string
	Filename  string  // overrides the name derived from the source
	Title     *string
	AltText   *string
	Caption   *string
}

// UploadMedia resolves the source bytes and POSTs them to the media endpoint
// as multipart/form-data. Validation failures happen before any network call.
func (c *Client) UploadMedia(ctx context.Context, src MediaSource) (any, error) {
	hasURL := strings.TrimSpace(src.SourceURL) != ""
	hasPath := strings.TrimSpace(src.LocalPath) != ""
	switch {
	case !hasURL && !hasPath:
		return nil, &apierrors.ValidationError{Message: "provide either source_url or local_path"}
	case hasURL && hasPath:
		return nil, &apierrors.ValidationError{Message: "provide only one of source_url or local_path, not both"}
	}

	var (
		content []byte
		name    string
		source  string
		err     error
	)
	if hasURL {
		source = "url"
		content, name, err = c.fetchSource(ctx, strings.TrimSpace(src.SourceURL))
	} else {
		source = "local"
		content, name, err = c.readLocal(strings.TrimSpace(src.LocalPath))
	}
	if err != nil {
		return nil, err
	}

	if src.Filename != "" {
		name = src.Filename
	}
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	if len(content) == 0 {
		return nil, apierrors.NewValidationError("file", name, "is empty")
	}

	fields := make(map[string]string)
	for key, value := range map[string]*string{
		"title":    src.Title,
		"alt_text": src.AltText,
		"caption":  src.Caption,
	} {
		if value != nil {
			fields[key] = *value
		}
	}

	c.Logger.Info("Uploading media",
		"source", source,
		"filename", name,
		"size", len(content))
	metrics.RecordUpload(source, len(content))

	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "media",
		Multipart: &Multipart{
			Filename:    name,
			ContentType: DetectContentType(name),
			Content:     content,
			Fields:      fields,
		},
	})
}

// fetchSource downloads a remote file. The WordPress credential is not sent:
// the source host is arbitrary.
func (c *Client) fetchSource(ctx context.Context, sourceURL string) ([]byte, string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", apierrors.NewValidationError("source_url", sourceURL, "must be an http or https URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", &apierrors.FetchError{URL: sourceURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, "", &apierrors.FetchError{URL: sourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", &apierrors.FetchError{URL: sourceURL, Status: resp.StatusCode}
	}

	limitedReader := &io.LimitedReader{R: resp.Body, N: MaxUploadSize + 1}
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, "", &apierrors.FetchError{URL: sourceURL, Err: err}
	}
	if len(data) > MaxUploadSize {
		return nil, "", apierrors.NewValidationError("source_url", sourceURL, "file exceeds maximum size of 50MB")
	}

	return data, path.Base(u.Path), nil
}

// readLocal reads a file from the configured filesystem.
func (c *Client) readLocal(localPath string) ([]byte, string, error) {
	info, err := c.Fs.Stat(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", &apierrors.NotFoundError{Resource: "file", Identifier: localPath}
		}
		return nil, "", &apierrors.TransportError{Op: "stat " + localPath, Err: err}
	}
	if info.IsDir() {
		return nil, "", apierrors.NewValidationError("local_path", localPath, "is a directory")
	}
	if info.Size() > MaxUploadSize {
		return nil, "", apierrors.NewValidationError("local_path", localPath, "file exceeds maximum size of 50MB")
	}

	data, err := afero.ReadFile(c.Fs, localPath)
	if err != nil {
		return nil, "", &apierrors.TransportError{Op: "read " + localPath, Err: err}
	}
	return data, filepath.Base(localPath), nil
}

// DetectContentType guesses a MIME type from the filename extension.
func DetectContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return DefaultContentType
}

// encodeMultipart writes the file part and the extra form fields. The returned
// content type carries the boundary.
func encodeMultipart(m *Multipart) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	contentType := m.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(m.Filename)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(m.Content); err != nil {
		return nil, "", err
	}

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
