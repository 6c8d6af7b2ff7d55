package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

func TestCreatePost_NormalizesResponse(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":     5,
			"title":  map[string]any{"rendered": "T"},
			"link":   "http://x/5",
			"status": "draft",
		})
	})

	result, err := client.CreatePostMCP(context.Background(), CreatePostArgs{Title: "T", Content: "body"})
	require.NoError(t, err)

	require.True(t, result.Success, result.Error)
	assert.Equal(t, &ContentSummary{ID: 5, Title: "T", Link: "http://x/5", Status: "draft"}, result.Post)

	call := stub.Last()
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, apiPrefix+"/posts", call.Path)
	assert.Equal(t, []string{"content", "status", "title"}, call.BodyKeys())
	assert.Equal(t, "publish", call.Body["status"])

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Post \"T\" created",
		"post": {"id": 5, "title": "T", "link": "http://x/5", "status": "draft"}
	}`, string(data))
}

func TestCreatePost_SendsOnlySuppliedOptionals(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 9})
	})

	result, err := client.CreatePostMCP(context.Background(), CreatePostArgs{
		Title:         "Hello",
		Content:       "World",
		Status:        ptr("draft"),
		Tags:          []int{},
		FeaturedMedia: ptr(0),
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	call := stub.Last()
	assert.Equal(t, []string{"content", "featured_media", "status", "tags", "title"}, call.BodyKeys())
	assert.Equal(t, "draft", call.Body["status"])
	assert.Equal(t, float64(0), call.Body["featured_media"])
	assert.Equal(t, []any{}, call.Body["tags"])
}

func TestCreateThenGetPost_RoundTrip(t *testing.T) {
	// The stub keeps what was created and serves it back the way WordPress
	// does, with title and content wrapped in rendered objects.
	var (
		mu    sync.Mutex
		store = map[string]map[string]any{}
	)
	record := func(id int, body map[string]any) map[string]any {
		return map[string]any{
			"id":      id,
			"title":   map[string]any{"rendered": body["title"]},
			"content": map[string]any{"rendered": body["content"]},
			"status":  body["status"],
			"link":    fmt.Sprintf("https://blog.example.com/?p=%d", id),
		}
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, call recordedCall) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodPost && call.Path == apiPrefix+"/posts":
			store["42"] = call.Body
			writeJSON(w, http.StatusCreated, record(42, call.Body))
		case r.Method == http.MethodGet && strings.HasPrefix(call.Path, apiPrefix+"/posts/"):
			body, ok := store[strings.TrimPrefix(call.Path, apiPrefix+"/posts/")]
			if !ok {
				wpError(w, http.StatusNotFound, "rest_post_invalid_id", "Invalid post ID.")
				return
			}
			writeJSON(w, http.StatusOK, record(42, body))
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	created, err := client.CreatePostMCP(ctx, CreatePostArgs{
		Title:   "Round trip",
		Content: "<p>Hello</p>",
		Status:  ptr("draft"),
	})
	require.NoError(t, err)
	require.True(t, created.Success, created.Error)
	require.NotNil(t, created.Post)

	fetched, err := client.GetPostMCP(ctx, GetPostArgs{PostID: created.Post.ID})
	require.NoError(t, err)
	require.True(t, fetched.Success, fetched.Error)
	require.NotNil(t, fetched.Post)

	assert.Equal(t, created.Post.ID, fetched.Post.ID)
	assert.Equal(t, created.Post.Title, fetched.Post.Title)
	assert.Equal(t, created.Post.Status, fetched.Post.Status)
	assert.Equal(t, created.Post.Link, fetched.Post.Link)
	assert.Equal(t, "Round trip", fetched.Post.Title)
	assert.Equal(t, "draft", fetched.Post.Status)
	assert.Equal(t, "<p>Hello</p>", fetched.Post.Content)

	missing, err := client.GetPostMCP(ctx, GetPostArgs{PostID: 7})
	require.NoError(t, err)
	assert.Equal(t, string(apierrors.KindNotFound), missing.ErrorKind)
}

func TestUpdatePost_OmitsAbsentFields(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":     5,
			"title":  map[string]any{"rendered": "New"},
			"status": "publish",
		})
	})

	result, err := client.UpdatePostMCP(context.Background(), UpdatePostArgs{PostID: 5, Title: ptr("New")})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Post #5 updated", result.Message)

	call := stub.Last()
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, apiPrefix+"/posts/5", call.Path)
	assert.Equal(t, []string{"title"}, call.BodyKeys())
	assert.NotContains(t, call.Body, "content")
	assert.NotContains(t, call.Body, "status")
}

func TestUpdatePost_NoFieldsIsValidationError(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		t.Error("unexpected request")
	})

	result, err := client.UpdatePostMCP(context.Background(), UpdatePostArgs{PostID: 5})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, string(apierrors.KindValidation), result.ErrorKind)
	assert.Empty(t, stub.Calls())
}

func TestGetPost(t *testing.T) {
	body := map[string]any{
		"id":         7,
		"title":      map[string]any{"rendered": "Caf&eacute; <em>news</em>"},
		"content":    map[string]any{"rendered": "<p>First  paragraph</p>\n<p>Second<br>line</p>", "protected": false},
		"excerpt":    map[string]any{"rendered": "<p>Short</p>"},
		"status":     "publish",
		"date":       "2024-05-01T10:00:00",
		"link":       "https://example.com/news",
		"author":     1,
		"categories": []any{3},
	}

	t.Run("html", func(t *testing.T) {
		client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
			writeJSON(w, http.StatusOK, body)
		})

		result, err := client.GetPostMCP(context.Background(), GetPostArgs{PostID: 7})
		require.NoError(t, err)
		require.True(t, result.Success, result.Error)

		assert.Equal(t, apiPrefix+"/posts/7", stub.Last().Path)
		assert.Equal(t, "<p>Short</p>", result.Post.Excerpt)
		assert.Equal(t, []int{3}, result.Post.Categories)
		assert.Equal(t, []int{}, result.Post.Tags)
		assert.Equal(t, 0, result.Post.FeaturedMedia)
	})

	t.Run("text", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
			writeJSON(w, http.StatusOK, body)
		})

		result, err := client.GetPostMCP(context.Background(), GetPostArgs{PostID: 7, Format: ptr("text")})
		require.NoError(t, err)
		require.True(t, result.Success, result.Error)

		assert.Equal(t, "Café news", result.Post.Title)
		assert.Equal(t, "First paragraph\nSecond\nline", result.Post.Content)
		assert.Equal(t, "Short", result.Post.Excerpt)
	})
}

func TestGetPost_StatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind apierrors.Kind
		wantText string
	}{
		{"unauthorized", http.StatusUnauthorized, apierrors.KindAuthentication, "authentication failed"},
		{"forbidden", http.StatusForbidden, apierrors.KindAuthorization, "permission denied"},
		{"not found", http.StatusNotFound, apierrors.KindNotFound, "resource not found"},
		{"server error", http.StatusInternalServerError, apierrors.KindUpstream, "WordPress server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
				wpError(w, tt.status, "rest_error", "upstream said no")
			})

			result, err := client.GetPostMCP(context.Background(), GetPostArgs{PostID: 1})
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Nil(t, result.Post)
			assert.Equal(t, string(tt.wantKind), result.ErrorKind)
			assert.Contains(t, result.Error, tt.wantText)
			assert.Contains(t, result.Error, "upstream said no")
		})
	}
}

func TestListPosts_QueryAndCount(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		writeJSON(w, http.StatusOK, []any{
			map[string]any{"id": 1, "title": map[string]any{"rendered": "One"}},
			map[string]any{"id": 2, "title": map[string]any{"rendered": "Two"}},
			map[string]any{"id": 3, "title": map[string]any{"rendered": "Three"}},
		})
	})

	result, err := client.ListPostsMCP(context.Background(), ListPostsArgs{
		Search:     ptr("  hello  "),
		Categories: []int{4, 7},
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	assert.Equal(t, 3, result.Count)
	assert.Len(t, result.Posts, result.Count)
	assert.Equal(t, "Two", result.Posts[1].Title)

	q := stub.Last().Query
	assert.Equal(t, []string{"10"}, q["per_page"])
	assert.Equal(t, []string{"1"}, q["page"])
	assert.Equal(t, []string{"hello"}, q["search"])
	assert.Equal(t, []string{"4,7"}, q["categories"])
	assert.NotContains(t, q, "status")
}

func TestListPosts_EmptyPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		writeJSON(w, http.StatusOK, []any{})
	})

	result, err := client.ListPostsMCP(context.Background(), ListPostsArgs{PerPage: ptr(5), Page: ptr(3)})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "count": 0, "posts": []}`, string(data))
}

func TestListPosts_NonArrayResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1})
	})

	result, err := client.ListPostsMCP(context.Background(), ListPostsArgs{})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, string(apierrors.KindTransport), result.ErrorKind)
}

func TestDeletePost_TrashThenNotFound(t *testing.T) {
	var deleted atomic.Bool
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		if deleted.Swap(true) {
			wpError(w, http.StatusNotFound, "rest_post_invalid_id", "Invalid post ID.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 5, "status": "trash"})
	})

	first, err := client.DeletePostMCP(context.Background(), DeletePostArgs{PostID: 5})
	require.NoError(t, err)
	require.True(t, first.Success, first.Error)
	assert.True(t, first.Deleted)
	assert.True(t, first.Trashed)
	assert.Equal(t, "Post #5 moved to trash", first.Message)
	assert.NotContains(t, stub.Last().Query, "force")
	assert.Equal(t, http.MethodDelete, stub.Last().Method)

	second, err := client.DeletePostMCP(context.Background(), DeletePostArgs{PostID: 5})
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, string(apierrors.KindNotFound), second.ErrorKind)
	assert.Contains(t, second.Error, "Invalid post ID.")
}

func TestDeletePost_Force(t *testing.T) {
	tests := []struct {
		name  string
		force *bool
		want  []string
	}{
		{"force true", ptr(true), []string{"true"}},
		{"explicit false is sent", ptr(false), []string{"false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
				writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "previous": map[string]any{"id": 5}})
			})

			result, err := client.DeletePostMCP(context.Background(), DeletePostArgs{PostID: 5, Force: tt.force})
			require.NoError(t, err)
			require.True(t, result.Success, result.Error)
			assert.True(t, result.Deleted)
			assert.False(t, result.Trashed)
			assert.Equal(t, tt.want, stub.Last().Query["force"])
		})
	}
}

func TestDeletePage_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ recordedCall) {
		w.WriteHeader(http.StatusNoContent)
	})

	result, err := client.DeletePageMCP(context.Background(), DeletePageArgs{PageID: 11, Force: ptr(true)})
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	assert.True(t, result.Deleted)
	assert.Equal(t, 11, result.ID)
	assert.Equal(t, "Page #11 deleted", result.Message)
}

func TestPages(t *testing.T) {
	client, stub := newTestClient(t, func(w http.ResponseWriter, r *http.Request, call recordedCall) {
		switch call.Method {
		case http.MethodGet:
			if call.Path == apiPrefix+"/pages" {
				writeJSON(w, http.StatusOK, []any{map[string]any{"id": 2, "parent": 0, "title": "About"}})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "parent": 1, "template": "full.php", "title": map[string]any{"rendered": "About"}})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"id": 2, "title": map[string]any{"rendered": "About"}, "status": "publish"})
		}
	})
	ctx := context.Background()

	created, err := client.CreatePageMCP(ctx, CreatePageArgs{Title: "About", Content: "x", Parent: ptr(0)})
	require.NoError(t, err)
	require.True(t, created.Success, created.Error)
	assert.Equal(t, []string{"content", "parent", "status", "title"}, stub.Last().BodyKeys())

	page, err := client.GetPageMCP(ctx, GetPageArgs{PageID: 2})
	require.NoError(t, err)
	require.True(t, page.Success, page.Error)
	assert.Equal(t, 1, page.Page.Parent)
	assert.Equal(t, "full.php", page.Page.Template)

	list, err := client.ListPagesMCP(ctx, ListPagesArgs{Parent: ptr(0)})
	require.NoError(t, err)
	require.True(t, list.Success, list.Error)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "About", list.Pages[0].Title)
	assert.Equal(t, []string{"0"}, stub.Last().Query["parent"])

	updated, err := client.UpdatePageMCP(ctx, UpdatePageArgs{PageID: 2, Template: ptr("")})
	require.NoError(t, err)
	require.True(t, updated.Success, updated.Error)
	assert.Equal(t, []string{"template"}, stub.Last().BodyKeys())
}
