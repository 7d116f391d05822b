package style

import (
	"regexp"
)

var tagPattern = regexp.MustCompile(`\[([A-Za-z]+)\]([^\[]*?)\[/([A-Za-z]+)\]`)

// Markup renders [Name]text[/Name] tags with the registered styles. Unknown
// or mismatched tags are left as written. Tags do not nest.
func Markup(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tagPattern.FindStringSubmatch(match)
		if len(sub) != 4 || sub[1] != sub[3] || !Has(sub[1]) {
			return match
		}
		return Render(sub[1], sub[2])
	})
}
