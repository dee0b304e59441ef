// Records produced by the scrapers
// Column order of the CSV artifacts

package scraper

import "errors"

// ErrNoListing is returned when a results container never shows up.
var ErrNoListing = errors.New("listing container not found")

// Offer is one listing card plus the attributes from its detail page.
// Absent values are empty strings.
type Offer struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Rate        string `json:"rate"`
	DetailURL   string `json:"detail_url"`
	ProductName string `json:"product_name"`
	ProductNo   string `json:"product_no"`
	Size        string `json:"size"`
	Weight      string `json:"weight"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var OfferHeader = []string{
	"Title", "Price", "Rate", "Detail URL",
	"Product Name", "Product No", "Size", "Weight", "Color", "Description",
}

func (o Offer) Row() []string {
	return []string{
		o.Title, o.Price, o.Rate, o.DetailURL,
		o.ProductName, o.ProductNo, o.Size, o.Weight, o.Color, o.Description,
	}
}

// Match is a search result card whose title contains a scraped offer title.
type Match struct {
	SearchedTitle string `json:"searched_title"`
	FoundTitle    string `json:"found_title"`
	Price         string `json:"price"`
	Rate          string `json:"rate"`
}

var MatchHeader = []string{"Searched Title", "Found Title", "Price", "Rate"}

func (m Match) Row() []string {
	return []string{m.SearchedTitle, m.FoundTitle, m.Price, m.Rate}
}
