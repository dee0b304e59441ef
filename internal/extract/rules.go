// Package extract evaluates declarative field rules against rendered HTML.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Rule locates one field inside a scope.
//
// Without Label, the first element matching Selector supplies the value:
// its rendered text, or attribute Attr when set. With Label, the value comes from the
// first Table.Rows row whose label text equals Label exactly.
type Rule struct {
	Field    string
	Selector string
	Attr     string
	Label    string
	Fallback string
}

// RowLayout describes "label: value" rows used by labeled rules.
type RowLayout struct {
	Row   string
	Label string
	Value string
}

type Table struct {
	Rows  RowLayout
	Rules []Rule
}

// Record maps field names to extracted values.
type Record map[string]string

// Apply evaluates every rule against scope. Rules fail independently: a
// missing element only affects its own field.
func (t Table) Apply(scope *goquery.Selection) Record {
	rec := make(Record, len(t.Rules))
	for _, r := range t.Rules {
		value, ok := t.lookup(scope, r)
		if !ok {
			value = r.Fallback
		}
		rec[r.Field] = value
	}
	return rec
}

func (t Table) lookup(scope *goquery.Selection, r Rule) (string, bool) {
	if r.Label != "" {
		return t.labeled(scope, r.Label)
	}

	el := scope.Find(r.Selector).First()
	if el.Length() == 0 {
		return "", false
	}
	if r.Attr != "" {
		return el.Attr(r.Attr)
	}
	return InnerText(el), true
}

func (t Table) labeled(scope *goquery.Selection, label string) (string, bool) {
	var value string
	var found bool
	scope.Find(t.Rows.Row).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		title := row.Find(t.Rows.Label).First()
		if title.Length() == 0 || collapse(InnerText(title)) != label {
			return true
		}
		val := row.Find(t.Rows.Value).First()
		if val.Length() > 0 {
			value, found = InnerText(val), true
		}
		return false
	})
	return value, found
}

// collapse trims and folds runs of whitespace into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Document parses an HTML page or fragment.
func Document(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Each applies t to every element matching selector, in document order.
func Each(doc *goquery.Document, selector string, t Table) []Record {
	var records []Record
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		records = append(records, t.Apply(s))
	})
	return records
}

// AbsoluteURL prefixes base onto hrefs that carry no scheme.
func AbsoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	if u, err := url.Parse(href); err == nil && u.Scheme != "" {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return strings.TrimRight(base, "/") + href
}
