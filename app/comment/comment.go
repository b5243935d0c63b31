// Package comment contains the comment endpoints. Reading is public,
// writing needs a token and only the author may change a comment.
package comment

import (
	"barkwise/pet-api/internal/model"
	"barkwise/pet-api/pkg/security"
)

const notFound = "Comment not found"

// authorName is what gets stored as the author of a new comment
func authorName(c *security.Claims) string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Email != "":
		return c.Email
	default:
		return "Anonymous"
	}
}

// isAuthor reports whether the acting user wrote cm. Comments carry the
// author's display string, so a match on name or email is accepted too.
func isAuthor(cm *model.Comment, c *security.Claims) bool {
	if cm.AuthorID != nil && *cm.AuthorID == security.CurrentUserID(c) {
		return true
	}

	return (c.Name != "" && cm.Author == c.Name) || (c.Email != "" && cm.Author == c.Email)
}
