package xlsx

import "regexp"

var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Link is an inline markdown link found in cell text.
type Link struct {
	Display string // text between the brackets
	URL     string // target between the parentheses
	Text    string // full cell text with the markup replaced by Display
}

// ExtractLink finds the first [text](url) in text. Later links are left as
// they are.
func ExtractLink(text string) (Link, bool) {
	m := markdownLink.FindStringSubmatchIndex(text)
	if m == nil {
		return Link{}, false
	}

	display := text[m[2]:m[3]]
	return Link{
		Display: display,
		URL:     text[m[4]:m[5]],
		Text:    text[:m[0]] + display + text[m[1]:],
	}, true
}
