package cleaner

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var newlineRunRe = regexp.MustCompile(`\n{3,}`)

// Cleaner strips markup from HR-authored free text. Job forms are plain
// text, but authors paste from rich editors, so every free-text field is
// sanitized before validation and persistence.
type Cleaner struct {
	policy *bluemonday.Policy
}

// New creates a cleaner that removes all HTML.
func New() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// CleanText removes markup and decodes HTML entities, returning trimmed
// plain text. Running it twice yields the same result as once.
func (c *Cleaner) CleanText(text string) string {
	out := c.policy.Sanitize(text)
	out = html.UnescapeString(out)
	out = newlineRunRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// CleanAll applies CleanText to every element of a string list in place
// order, returning a new slice.
func (c *Cleaner) CleanAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = c.CleanText(item)
	}
	return out
}
