package eshop

import "go-eshop-scraper/internal/extract"

const (
	cardSelector        = "div.k-card-body"
	detailContainer     = "div.model-data-left-container"
	resultsContainer    = "div.k-listview-content"
	listingNextSelector = "a[aria-label='Next']"
	searchNextSelector  = "a.k-link[title='Go to the next page']"
	disabledMarker      = "k-state-disabled"
)

// Card fields
const (
	fieldTitle     = "Title"
	fieldPrice     = "Price"
	fieldRate      = "Rate"
	fieldDetailURL = "Detail URL"
)

// Detail fields
const (
	fieldProductName = "Product Name"
	fieldProductNo   = "Product No"
	fieldSize        = "Size"
	fieldWeight      = "Weight"
	fieldColor       = "Color"
	fieldDescription = "Description"
)

var cardRules = extract.Table{
	Rules: []extract.Rule{
		{Field: fieldTitle, Selector: "div.card-title"},
		{Field: fieldPrice, Selector: "div.card-price"},
		{Field: fieldRate, Selector: "span.rating-text"},
		{Field: fieldDetailURL, Selector: "div.k-card-header a", Attr: "href"},
	},
}

var detailRules = extract.Table{
	Rows: extract.RowLayout{Row: "div.model-data-row", Label: "span.title", Value: "span.value"},
	Rules: []extract.Rule{
		{Field: fieldProductName, Label: "Product Name"},
		{Field: fieldProductNo, Label: "Product No"},
		{Field: fieldSize, Label: "Size"},
		{Field: fieldWeight, Label: "Weight"},
		{Field: fieldColor, Selector: "ul#colorPicker label.k-radio-label"},
		{Field: fieldDescription, Label: "Description"},
	},
}
