package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/olgasafonova/wordpress-mcp-server/internal/wordpress"
	"github.com/olgasafonova/wordpress-mcp-server/metrics"
	"github.com/olgasafonova/wordpress-mcp-server/tracing"
)

// outcome is implemented by every result through its embedded envelope.
type outcome interface {
	Succeeded() bool
	FailureKind() string
}

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *wordpress.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *wordpress.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)
	c := h.client

	switch spec.Method {
	// Posts
	case "CreatePost":
		register(h, server, tool, spec, c.CreatePostMCP)
	case "GetPost":
		register(h, server, tool, spec, c.GetPostMCP)
	case "ListPosts":
		register(h, server, tool, spec, c.ListPostsMCP)
	case "UpdatePost":
		register(h, server, tool, spec, c.UpdatePostMCP)
	case "DeletePost":
		register(h, server, tool, spec, c.DeletePostMCP)

	// Pages
	case "CreatePage":
		register(h, server, tool, spec, c.CreatePageMCP)
	case "GetPage":
		register(h, server, tool, spec, c.GetPageMCP)
	case "ListPages":
		register(h, server, tool, spec, c.ListPagesMCP)
	case "UpdatePage":
		register(h, server, tool, spec, c.UpdatePageMCP)
	case "DeletePage":
		register(h, server, tool, spec, c.DeletePageMCP)

	// Users
	case "GetUser":
		register(h, server, tool, spec, c.GetUserMCP)
	case "ListUsers":
		register(h, server, tool, spec, c.ListUsersMCP)
	case "CreateUser":
		register(h, server, tool, spec, c.CreateUserMCP)
	case "UpdateUser":
		register(h, server, tool, spec, c.UpdateUserMCP)

	// Media
	case "UploadMedia":
		register(h, server, tool, spec, c.UploadMediaMCP)
	case "GetMedia":
		register(h, server, tool, spec, c.GetMediaMCP)
	case "ListMedia":
		register(h, server, tool, spec, c.ListMediaMCP)
	case "UpdateMedia":
		register(h, server, tool, spec, c.UpdateMediaMCP)

	// Comments
	case "GetComment":
		register(h, server, tool, spec, c.GetCommentMCP)
	case "ListComments":
		register(h, server, tool, spec, c.ListCommentsMCP)
	case "CreateComment":
		register(h, server, tool, spec, c.CreateCommentMCP)
	case "UpdateComment":
		register(h, server, tool, spec, c.UpdateCommentMCP)
	case "DeleteComment":
		register(h, server, tool, spec, c.DeleteCommentMCP)

	// Categories
	case "ListCategories":
		register(h, server, tool, spec, c.ListCategoriesMCP)
	case "GetCategory":
		register(h, server, tool, spec, c.GetCategoryMCP)
	case "CreateCategory":
		register(h, server, tool, spec, c.CreateCategoryMCP)
	case "UpdateCategory":
		register(h, server, tool, spec, c.UpdateCategoryMCP)

	// Tags
	case "ListTags":
		register(h, server, tool, spec, c.ListTagsMCP)
	case "GetTag":
		register(h, server, tool, spec, c.GetTagMCP)
	case "CreateTag":
		register(h, server, tool, spec, c.CreateTagMCP)
	case "UpdateTag":
		register(h, server, tool, spec, c.UpdateTagMCP)

	// Site
	case "GetSiteInfo":
		register(h, server, tool, spec, c.GetSiteInfoMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	} else {
		annotations.DestructiveHint = ptr(false)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
// A result whose envelope reports failure is returned to the caller as a tool
// error (IsError) carrying the envelope, never as a protocol error.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, result Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()
		tracing.AddToolAttributes(span, spec.Name, spec.Category, spec.Resource, spec.ReadOnly)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err = method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		if o, ok := any(result).(outcome); ok && !o.Succeeded() {
			span.SetStatus(codes.Error, o.FailureKind())
			span.SetAttributes(attribute.String("mcp.tool.error_kind", o.FailureKind()))
			metrics.RecordRequest(spec.Name, duration, false)
			metrics.RecordToolFailure(spec.Name, o.FailureKind())
			h.logFailure(spec, args, o)
			return errorResult(result), result, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// errorResult marks the call as failed while still carrying the envelope.
func errorResult(result any) *mcp.CallToolResult {
	text := "tool call failed"
	if data, err := json.Marshal(result); err == nil {
		text = string(data)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// recoverPanic recovers from panics in tool handlers and reports them as a
// tool error.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		*errp = fmt.Errorf("%s failed: internal error", toolName)
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "resource", spec.Resource}

	// Add extractable fields from args and result
	if a, ok := args.(interface{ ResourceID() int }); ok {
		attrs = append(attrs, "id", a.ResourceID())
	}
	if r, ok := result.(interface{ ItemCount() int }); ok {
		attrs = append(attrs, "count", r.ItemCount())
	}
	if r, ok := result.(wordpress.DeleteResult); ok {
		attrs = append(attrs, "deleted", r.Deleted, "trashed", r.Trashed)
	}

	h.logger.Info("Tool executed", attrs...)
}

// logFailure logs a tool call whose envelope reports failure.
func (h *HandlerRegistry) logFailure(spec ToolSpec, args any, o outcome) {
	attrs := []any{"tool", spec.Name, "resource", spec.Resource, "error_kind", o.FailureKind()}
	if a, ok := args.(interface{ ResourceID() int }); ok {
		attrs = append(attrs, "id", a.ResourceID())
	}
	h.logger.Warn("Tool failed", attrs...)
}
