package eshop

import (
	"testing"

	"go-eshop-scraper/internal/config"
	"go-eshop-scraper/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceable(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		expected bool
	}{
		{name: "Enabled", class: "k-link k-pager-nav", expected: true},
		{name: "No class", class: "", expected: true},
		{name: "Disabled", class: "k-link k-state-disabled", expected: false},
		{name: "Disabled only", class: "k-state-disabled", expected: false},
		{name: "Padded", class: "  k-link\tk-state-disabled ", expected: false},
		{name: "Similar class name", class: "k-link k-state-disabled-soon", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, advanceable(tt.class, disabledMarker))
		})
	}
}

func TestSearchURL(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t,
		"https://demos.telerik.com/aspnet-core/eshop/Products/Summary?searchParam=Trek+Domane",
		SearchURL(cfg, "Trek Domane"))

	cfg.SearchPath = "/search?lang=en"
	assert.Equal(t, "https://demos.telerik.com/search?lang=en&searchParam=Road-150+Red", SearchURL(cfg, "Road-150 Red"))
}

func TestCountUnsearchable(t *testing.T) {
	offers := []scraper.Offer{
		{Title: "Road-150 Red, 62"},
		{Title: ""},
		{Title: "   "},
		//title present, but nothing before the comma
		{Title: ", Size 56"},
		{Title: "Road-650\nBlack, 62"},
	}
	assert.Equal(t, 3, countUnsearchable(offers))
}
