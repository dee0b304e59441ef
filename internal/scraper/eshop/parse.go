package eshop

import (
	"go-eshop-scraper/internal/extract"
	"go-eshop-scraper/internal/filter"
	"go-eshop-scraper/internal/scraper"
)

// ParseCards reads the summary of every product card in a listing page.
// Relative detail links are made absolute against baseURL.
func ParseCards(html, baseURL string) ([]scraper.Offer, error) {
	doc, err := extract.Document(html)
	if err != nil {
		return nil, err
	}

	records := extract.Each(doc, cardSelector, cardRules)
	offers := make([]scraper.Offer, 0, len(records))
	for _, rec := range records {
		offers = append(offers, scraper.Offer{
			Title:     rec[fieldTitle],
			Price:     rec[fieldPrice],
			Rate:      rec[fieldRate],
			DetailURL: extract.AbsoluteURL(baseURL, rec[fieldDetailURL]),
		})
	}
	return offers, nil
}

// ParseDetail copies the detail attributes of a product page into offer.
// Missing rows leave the matching field empty.
func ParseDetail(html string, offer *scraper.Offer) error {
	doc, err := extract.Document(html)
	if err != nil {
		return err
	}

	rec := detailRules.Apply(doc.Find(detailContainer).First())
	offer.ProductName = rec[fieldProductName]
	offer.ProductNo = rec[fieldProductNo]
	offer.Size = rec[fieldSize]
	offer.Weight = rec[fieldWeight]
	offer.Color = rec[fieldColor]
	offer.Description = rec[fieldDescription]
	return nil
}

// ParseMatches keeps the search result cards whose title contains searched.
func ParseMatches(html, searched string) ([]scraper.Match, error) {
	doc, err := extract.Document(html)
	if err != nil {
		return nil, err
	}

	var matches []scraper.Match
	for _, rec := range extract.Each(doc, cardSelector, cardRules) {
		if !filter.TitleMatches(rec[fieldTitle], searched) {
			continue
		}
		matches = append(matches, scraper.Match{
			SearchedTitle: searched,
			FoundTitle:    rec[fieldTitle],
			Price:         rec[fieldPrice],
			Rate:          rec[fieldRate],
		})
	}
	return matches, nil
}
