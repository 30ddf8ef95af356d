// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// TodoTitle validates a todo title is non-empty after trimming whitespace.
func TodoTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// TodoTitleField returns a criterio validator for todo titles.
func TodoTitleField(field, title string) error {
	return criterio.Run(field, title, TodoTitle)
}

// UserID validates a user id is non-empty after trimming whitespace.
func UserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

// UserIDField returns a criterio validator for user ids.
func UserIDField(field, id string) error {
	return criterio.Run(field, id, UserID)
}
