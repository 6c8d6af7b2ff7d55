package wordpress

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr, figure, figcaption, section, article"

// HTMLToText reduces rendered WordPress HTML to plain text. Block elements
// and <br> become line breaks, entities are decoded and runs of whitespace
// collapse to a single space. Input that fails to parse is returned as is.
func HTMLToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).AppendHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}

func wantText(format *string) bool {
	return format != nil && *format == "text"
}
