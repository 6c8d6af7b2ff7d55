// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a wordpress.Client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "wp_create_post")
	Name string

	// Method is the client method name (e.g., "CreatePost")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools by operation (create, read, list, update, delete)
	Category string

	// Resource is the WordPress resource kind the tool acts on
	Resource string

	// ReadOnly indicates the tool doesn't modify site content
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolsByResource returns the specs acting on one resource kind.
func ToolsByResource(resource string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Resource == resource {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the specs in one category.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
