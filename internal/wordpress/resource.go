package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

// Transport executes one REST call. *base.Client implements it.
type Transport interface {
	Do(ctx context.Context, req base.Request) (any, error)
}

// Resource is the CRUD shape shared by every wp/v2 collection. R is the raw
// record the responses decode into.
type Resource[R any] struct {
	transport Transport
	kind      string   // "post", "category", ...
	path      string   // "posts", "categories", ...
	required  []string // body keys Create insists on
}

// NewResource builds the operations for one collection.
func NewResource[R any](t Transport, kind, path string, required ...string) *Resource[R] {
	return &Resource[R]{transport: t, kind: kind, path: path, required: required}
}

// Kind returns the singular resource name used in messages.
func (r *Resource[R]) Kind() string { return r.kind }

// Create POSTs fields to the collection.
func (r *Resource[R]) Create(ctx context.Context, fields Fields) (R, error) {
	var zero R
	for _, key := range r.required {
		if !fields.Has(key) {
			return zero, apierrors.NewValidationError(key, "", "is required to create a "+r.kind)
		}
	}
	raw, err := r.transport.Do(ctx, base.Request{Method: http.MethodPost, Path: r.path, Body: fields})
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", r.kind, err)
	}
	return decodeRecord[R](r.kind, raw)
}

// Get fetches one object by id.
func (r *Resource[R]) Get(ctx context.Context, id int, query url.Values) (R, error) {
	return r.GetRef(ctx, strconv.Itoa(id), query)
}

// GetRef fetches one object by a path reference such as "me".
func (r *Resource[R]) GetRef(ctx context.Context, ref string, query url.Values) (R, error) {
	var zero R
	raw, err := r.transport.Do(ctx, base.Request{Method: http.MethodGet, Path: r.path + "/" + ref, Query: query})
	if err != nil {
		return zero, fmt.Errorf("get %s %s: %w", r.kind, ref, err)
	}
	return decodeRecord[R](r.kind, raw)
}

// List fetches one page of the collection.
func (r *Resource[R]) List(ctx context.Context, query url.Values) ([]R, error) {
	raw, err := r.transport.Do(ctx, base.Request{Method: http.MethodGet, Path: r.path, Query: query})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	if _, ok := raw.([]any); !ok {
		return nil, &apierrors.TransportError{Op: "list " + r.path, Err: fmt.Errorf("expected a JSON array, got %T", raw)}
	}
	var out []R
	if err := decode(raw, &out); err != nil {
		return nil, &apierrors.TransportError{Op: "decode " + r.path, Err: err}
	}
	return out, nil
}

// Update sends only the supplied fields; WordPress merges them into the object.
func (r *Resource[R]) Update(ctx context.Context, id int, fields Fields) (R, error) {
	var zero R
	if len(fields) == 0 {
		return zero, apierrors.NewValidationError("", "", fmt.Sprintf("no fields supplied to update %s %d", r.kind, id))
	}
	raw, err := r.transport.Do(ctx, base.Request{Method: http.MethodPut, Path: r.itemPath(id), Body: fields})
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", r.kind, id, err)
	}
	return decodeRecord[R](r.kind, raw)
}

// Delete removes an object. force is sent only when supplied; without it
// WordPress moves trashable objects to the trash.
func (r *Resource[R]) Delete(ctx context.Context, id int, force *bool) (DeleteOutcome, error) {
	query := url.Values{}
	if force != nil {
		query.Set("force", strconv.FormatBool(*force))
	}
	raw, err := r.transport.Do(ctx, base.Request{Method: http.MethodDelete, Path: r.itemPath(id), Query: query})
	if err != nil {
		return DeleteOutcome{}, fmt.Errorf("delete %s %d: %w", r.kind, id, err)
	}
	return deleteOutcome(raw), nil
}

func (r *Resource[R]) itemPath(id int) string {
	return r.path + "/" + strconv.Itoa(id)
}

// deleteOutcome reads both delete response shapes: {"deleted": true,
// "previous": {...}} for permanent deletes and the trashed object itself.
func deleteOutcome(raw any) DeleteOutcome {
	doc, _ := raw.(map[string]any)
	if deleted, ok := doc["deleted"].(bool); ok && deleted {
		return DeleteOutcome{Deleted: true}
	}
	if status, _ := doc["status"].(string); status == "trash" {
		return DeleteOutcome{Deleted: true, Trashed: true}
	}
	return DeleteOutcome{}
}

func decodeRecord[R any](kind string, raw any) (R, error) {
	var out R
	if _, ok := raw.(map[string]any); !ok {
		return out, &apierrors.TransportError{Op: "decode " + kind, Err: fmt.Errorf("expected a JSON object, got %T", raw)}
	}
	if err := decode(raw, &out); err != nil {
		return out, &apierrors.TransportError{Op: "decode " + kind, Err: err}
	}
	return out, nil
}

func decode(raw, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       renderedHook,
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

var renderedType = reflect.TypeOf(Rendered(""))

// renderedHook unwraps {"rendered": ...} into a Rendered string.
func renderedHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != renderedType {
		return data, nil
	}
	switch v := data.(type) {
	case map[string]any:
		if s, ok := v["rendered"].(string); ok {
			return s, nil
		}
		if s, ok := v["raw"].(string); ok {
			return s, nil
		}
		return "", nil
	case nil:
		return "", nil
	}
	return data, nil
}

// Fields is an outgoing JSON body. A key is present only when the caller
// supplied it; zero values that were supplied explicitly are kept.
type Fields map[string]any

// Set always includes key.
func (f Fields) Set(key string, value any) Fields {
	f[key] = value
	return f
}

// Has reports whether key is present.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Keys returns the present keys in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetOptional includes key only when v is non-nil.
func SetOptional[T any](f Fields, key string, v *T) {
	if v != nil {
		f[key] = *v
	}
}

// SetList includes key only when the caller supplied a list, even an empty one.
func SetList[T any](f Fields, key string, v []T) {
	if v != nil {
		f[key] = v
	}
}

// Pagination defaults
const (
	DefaultPerPage     = 10
	DefaultTermPerPage = 100
	MaxPerPage         = 100
)

// pageQuery starts a list query with per_page and page applied.
func pageQuery(perPage, page *int, defaultPerPage int) url.Values {
	q := url.Values{}
	pp := defaultPerPage
	if perPage != nil {
		pp = *perPage
	}
	p := 1
	if page != nil {
		p = *page
	}
	q.Set("per_page", strconv.Itoa(pp))
	q.Set("page", strconv.Itoa(p))
	return q
}

// setFilter adds a string filter when it is present and not blank.
func setFilter(q url.Values, key string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		q.Set(key, strings.TrimSpace(*v))
	}
}

// setIntFilter adds a numeric filter when present; 0 is a valid value
// (parent=0 selects top-level objects).
func setIntFilter(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// setListFilter serializes a list filter as a comma-joined string.
func setListFilter[T any](q url.Values, key string, v []T) {
	if len(v) == 0 {
		return
	}
	parts := make([]string, 0, len(v))
	for _, item := range v {
		parts = append(parts, strings.TrimSpace(fmt.Sprint(item)))
	}
	q.Set(key, strings.Join(parts, ","))
}
