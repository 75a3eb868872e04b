package models

import "strings"

// Trim normalizes the user-supplied fields before validation.
func (c *Comment) Trim() {
	c.AuthorName = strings.TrimSpace(c.AuthorName)
	c.Content = strings.TrimSpace(c.Content)
}

// Validate checks if the comment meets all validation requirements.
// PostID comes from the URL path, not the body, so it is checked for
// existence by the service rather than validated here.
func (c *Comment) Validate() error {
	return validate.StructPartial(c, "AuthorName", "Content")
}
