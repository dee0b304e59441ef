package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockElements start and end on their own line when rendered.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true,
}

// InnerText renders s the way a browser's innerText does for static markup:
// br and block boundaries become line breaks, whitespace runs inside a line
// collapse to one space, and the result is trimmed.
func InnerText(s *goquery.Selection) string {
	w := &textWriter{}
	for _, n := range s.Nodes {
		w.render(n)
	}
	return tidy(w.String())
}

type textWriter struct {
	strings.Builder
	// pendingBreak is set at a block boundary; the newline is only written
	// once more text follows, so nested blocks yield a single break.
	pendingBreak bool
}

func (w *textWriter) render(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "br":
			w.WriteByte('\n')
			w.pendingBreak = false
			return
		case "script", "style", "template", "head":
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		w.pendingBreak = true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.render(c)
	}
	if block {
		w.pendingBreak = true
	}
}

func (w *textWriter) text(data string) {
	//source line breaks are plain whitespace
	data = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\f':
			return ' '
		}
		return r
	}, data)

	if strings.TrimSpace(data) == "" {
		if !w.pendingBreak {
			w.WriteString(data)
		}
		return
	}
	if w.pendingBreak {
		if w.Len() > 0 {
			w.WriteByte('\n')
		}
		w.pendingBreak = false
	}
	w.WriteString(data)
}

// tidy collapses spaces within each line and trims the whole text.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = collapse(line)
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
