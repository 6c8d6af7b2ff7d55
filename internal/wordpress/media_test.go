package wordpress

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

func TestUploadMedia_RequiresExactlyOneSource(t *testing.T) {
	tests := []struct {
		name string
		args UploadMediaArgs
	}{
		{"no source", UploadMediaArgs{Title: ptr("x")}},
		{"both sources", UploadMediaArgs{SourceURL: "https://example.com/a.png", LocalPath: "/tmp/a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
				t.Error("unexpected request")
			})

			result, err := client.UploadMediaMCP(context.Background(), tt.args)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Nil(t, result.Media)
			assert.Equal(t, string(apierrors.KindValidation), result.ErrorKind)
			assert.Contains(t, result.Error, "source_url")
			assert.Empty(t, stub.Calls())
		})
	}
}

func TestUploadMedia_LocalFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/uploads/photo.JPG", []byte("jpeg-bytes"), 0o644))

	var gotFile, gotType, gotAlt string
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			gotAlt = r.FormValue("alt_text")
			if f, hdr, err := r.FormFile("file"); err == nil {
				data, _ := io.ReadAll(f)
				_ = f.Close()
				gotFile = hdr.Filename + ":" + string(data)
				gotType = hdr.Header.Get("Content-Type")
			}
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":         31,
			"title":      map[string]any{"rendered": "photo"},
			"source_url": "https://example.com/wp-content/uploads/photo.jpg",
			"media_type": "image",
			"mime_type":  "image/jpeg",
			"alt_text":   "A photo",
		})
	}, base.WithFs(fs))

	result, err := client.UploadMediaMCP(context.Background(), UploadMediaArgs{
		LocalPath: "/uploads/photo.JPG",
		AltText:   ptr("A photo"),
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	assert.Equal(t, "Media uploaded", result.Message)
	assert.Equal(t, &Media{
		ID:        31,
		Title:     "photo",
		SourceURL: "https://example.com/wp-content/uploads/photo.jpg",
		MediaType: "image",
		MimeType:  "image/jpeg",
		AltText:   "A photo",
	}, result.Media)

	assert.Equal(t, http.MethodPost, stub.Last().Method)
	assert.Equal(t, apiPrefix+"/media", stub.Last().Path)
	assert.Equal(t, "photo.JPG:jpeg-bytes", gotFile)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "A photo", gotAlt)
}

func TestUploadMedia_MissingLocalFile(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		t.Error("unexpected request")
	}, base.WithFs(afero.NewMemMapFs()))

	result, err := client.UploadMediaMCP(context.Background(), UploadMediaArgs{LocalPath: "/nope.png"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, string(apierrors.KindNotFound), result.ErrorKind)
	assert.Contains(t, result.Error, "/nope.png")
	assert.Empty(t, stub.Calls())
}

func TestUploadMedia_InvalidSourceURL(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		t.Error("unexpected request")
	})

	result, err := client.UploadMediaMCP(context.Background(), UploadMediaArgs{SourceURL: "not a url"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, string(apierrors.KindValidation), result.ErrorKind)
	assert.Empty(t, stub.Calls())
}

func TestMediaLibrary(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, call recordedCall) {
		switch {
		case call.Path == apiPrefix+"/media":
			writeJSON(w, http.StatusOK, []any{
				map[string]any{"id": 1, "media_type": "image", "title": map[string]any{"rendered": "a"}},
				map[string]any{"id": 2, "media_type": "image", "title": map[string]any{"rendered": "b"}},
			})
		case call.Method == http.MethodPut:
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "alt_text": call.Body["alt_text"]})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "mime_type": "image/png"})
		}
	})
	ctx := context.Background()

	list, err := client.ListMediaMCP(ctx, ListMediaArgs{MediaType: ptr("image"), PerPage: ptr(2)})
	require.NoError(t, err)
	require.True(t, list.Success, list.Error)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, []string{"image"}, stub.Last().Query["media_type"])
	assert.Equal(t, []string{"2"}, stub.Last().Query["per_page"])

	got, err := client.GetMediaMCP(ctx, GetMediaArgs{MediaID: 2})
	require.NoError(t, err)
	require.True(t, got.Success, got.Error)
	assert.Equal(t, "image/png", got.Media.MimeType)
	assert.Equal(t, "", got.Media.Title)

	updated, err := client.UpdateMediaMCP(ctx, UpdateMediaArgs{MediaID: 2, AltText: ptr("")})
	require.NoError(t, err)
	require.True(t, updated.Success, updated.Error)
	assert.Equal(t, []string{"alt_text"}, stub.Last().BodyKeys())
	assert.Equal(t, "Media #2 updated", updated.Message)
}
