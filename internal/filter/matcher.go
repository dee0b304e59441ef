package filter

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SearchTerm keeps the part of a title before the first comma, with line
// breaks and whitespace runs folded to single spaces.
// "Trek Domane, Size 56, Red" -> "Trek Domane"
func SearchTerm(title string) string {
	head, _, _ := strings.Cut(title, ",")
	return collapseSpace(head)
}

// SearchQuery form-encodes a search term for the searchParam query value.
func SearchQuery(term string) string {
	return url.QueryEscape(term)
}

// TitleMatches reports whether found contains searched, ignoring case and
// how whitespace is laid out.
func TitleMatches(found, searched string) bool {
	return strings.Contains(normalizeText(found), normalizeText(searched))
}

func normalizeText(str string) string {
	//NFC first so composed and decomposed accents compare equal
	return cases.Fold().String(norm.NFC.String(collapseSpace(str)))
}

func collapseSpace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
