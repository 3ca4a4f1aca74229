package summarize

import (
	"regexp"
	"strings"
)

// markdownEscaper backslash-escapes characters meaningful to the
// display layer's markup. This is a textual contract with the display
// surface, not part of the summarization algorithm.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"$", `\$`,
	"%", `\%`,
	"^", `\^`,
	"&", `\&`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"~", `\~`,
	"@", `\@`,
	"₹", `\₹`,
	"£", `\£`,
	"€", `\€`,
)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// CleanForMarkdown escapes markup-sensitive characters and collapses
// whitespace runs to single spaces.
func CleanForMarkdown(text string) string {
	text = markdownEscaper.Replace(text)
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}
