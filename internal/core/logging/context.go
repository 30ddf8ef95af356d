package logging

import "context"

type contextKey string

const (
	userIDKey contextKey = "user_id"
	todoIDKey contextKey = "todo_id"
)

// WithUserID adds an owning user ID to the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// WithTodoID adds a todo aggregate ID to the context.
func WithTodoID(ctx context.Context, todoID string) context.Context {
	return context.WithValue(ctx, todoIDKey, todoID)
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not present.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// GetTodoID retrieves the todo aggregate ID from the context.
// Returns empty string if not present.
func GetTodoID(ctx context.Context) string {
	if id, ok := ctx.Value(todoIDKey).(string); ok {
		return id
	}
	return ""
}
