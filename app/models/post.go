package models

import "strings"

// Trim normalizes the user-supplied fields before validation. Persisted
// values are always the trimmed ones.
func (p *Post) Trim() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.StructPartial(p, "Title", "Content")
}
