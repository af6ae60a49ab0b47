package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

var stripTags = regexp.MustCompile(`</?(?:p|ul|ol)>`)

var replacer = strings.NewReplacer(
	"<h1>", "<b>", "</h1>", "</b>\n",
	"<h2>", "<b>", "</h2>", "</b>\n",
	"<h3>", "<b>", "</h3>", "</b>\n",
	"<li>", "• ", "</li>", "\n",
	"<strong>", "<b>", "</strong>", "</b>",
	"<em>", "<i>", "</em>", "</i>",
	"<br>", "\n", "<br/>", "\n", "<br />", "\n",
	"<hr>", "", "<hr/>", "", "<hr />", "",
)

// ToHTML converts markdown into the tag subset Telegram accepts with
// ParseMode HTML. Headings become bold lines, lists become bullet lines.
func ToHTML(markdown string) string {
	html := string(blackfriday.MarkdownCommon([]byte(markdown)))
	html = replacer.Replace(html)
	html = stripTags.ReplaceAllString(html, "")
	return strings.TrimSpace(html)
}
