package domain

import (
	"strings"
	"time"
)

// Article is a generated SEO content piece.
type Article struct {
	ID          string
	Title       string
	Content     string
	HTMLContent string
	Keywords    []string
	Slug        string
	Status      string
	CreatedAt   time.Time
}

// Slugify lowercases a title and replaces runs of non-alphanumerics with
// single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
