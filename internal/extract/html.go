package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripTags removes HTML markup from a fragment and collapses the
// remaining text to single-spaced plain text. A fragment that fails to
// parse is returned with whitespace collapsed only.
func StripTags(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseWhitespace(fragment)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
