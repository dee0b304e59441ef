package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardTable = Table{
	Rules: []Rule{
		{Field: "title", Selector: "div.card-title"},
		{Field: "price", Selector: "div.card-price"},
		{Field: "rate", Selector: "span.rating-text", Fallback: "n/a"},
		{Field: "href", Selector: "a.link", Attr: "href"},
	},
}

var detailTable = Table{
	Rows: RowLayout{Row: "div.row", Label: "span.title", Value: "span.value"},
	Rules: []Rule{
		{Field: "name", Label: "Product Name"},
		{Field: "no", Label: "Product No"},
		{Field: "size", Label: "Size"},
		{Field: "color", Selector: "ul#colors label"},
	},
}

const cardsHTML = `
<div class="grid">
  <div class="card">
    <div class="card-title">  Road-150 Red, 62 </div>
    <div class="card-price">$3,578.27</div>
    <span class="rating-text">4.5</span>
    <a class="link" href="/Products/Details/1">x</a>
  </div>
  <div class="card">
    <div class="card-price">$1,000.00</div>
    <a class="link" href="https://cdn.example.com/p/2">x</a>
  </div>
  <div class="card">
    <div class="card-title">Road-650 Black</div>
  </div>
</div>`

func TestEach_DocumentOrderAndFieldIndependence(t *testing.T) {
	doc, err := Document(cardsHTML)
	require.NoError(t, err)

	records := Each(doc, "div.card", cardTable)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		"title": "Road-150 Red, 62",
		"price": "$3,578.27",
		"rate":  "4.5",
		"href":  "/Products/Details/1",
	}, records[0])

	//title missing: other fields still extracted
	assert.Equal(t, Record{
		"title": "",
		"price": "$1,000.00",
		"rate":  "n/a",
		"href":  "https://cdn.example.com/p/2",
	}, records[1])

	assert.Equal(t, Record{
		"title": "Road-650 Black",
		"price": "",
		"rate":  "n/a",
		"href":  "",
	}, records[2])
}

func TestEach_NoMatches(t *testing.T) {
	doc, err := Document(`<p>empty</p>`)
	require.NoError(t, err)
	assert.Empty(t, Each(doc, "div.card", cardTable))
}

func TestApply_LabeledRows(t *testing.T) {
	doc, err := Document(`
<div class="container">
  <div class="row"><span class="title">Product Name</span><span class="value"> Road-150 </span></div>
  <div class="row"><span class="title">Product No Extra</span><span class="value">wrong</span></div>
  <div class="row"><span class="title"> Product   No </span><span class="value">BK-R93R-62</span></div>
  <div class="row"><span class="title">Size</span></div>
  <ul id="colors"><li><label>Red</label></li><li><label>Black</label></li></ul>
</div>`)
	require.NoError(t, err)

	rec := detailTable.Apply(doc.Find("div.container"))

	assert.Equal(t, "Road-150", rec["name"])
	//exact label match skips "Product No Extra"
	assert.Equal(t, "BK-R93R-62", rec["no"])
	//row without value span falls back
	assert.Equal(t, "", rec["size"])
	assert.Equal(t, "Red", rec["color"])
}

func TestApply_MissingRowsFallBack(t *testing.T) {
	doc, err := Document(`<div class="container"></div>`)
	require.NoError(t, err)

	rec := detailTable.Apply(doc.Find("div.container"))
	assert.Equal(t, Record{"name": "", "no": "", "size": "", "color": ""}, rec)
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://demos.telerik.com"
	tests := []struct {
		name     string
		base     string
		href     string
		expected string
	}{
		{name: "Rooted path", base: base, href: "/aspnet-core/eshop/Products/Details/7", expected: "https://demos.telerik.com/aspnet-core/eshop/Products/Details/7"},
		{name: "Already absolute", base: base, href: "https://other.example.com/p/1", expected: "https://other.example.com/p/1"},
		{name: "Plain http", base: base, href: "http://other.example.com/p/1", expected: "http://other.example.com/p/1"},
		{name: "Relative without slash", base: base, href: "Products/Details/7", expected: "https://demos.telerik.com/Products/Details/7"},
		{name: "Base with trailing slash", base: base + "/", href: "/p/1", expected: "https://demos.telerik.com/p/1"},
		{name: "Empty", base: base, href: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AbsoluteURL(tt.base, tt.href))
		})
	}
}

func TestInnerText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{name: "Plain", html: `<span id="x">  Road-150   Red </span>`, expected: "Road-150 Red"},
		{name: "Br", html: `<span id="x">Fast bike.<br>Light frame.</span>`, expected: "Fast bike.\nLight frame."},
		{name: "Double br", html: `<span id="x">a<br><br>b</span>`, expected: "a\n\nb"},
		{name: "Source newlines are spaces", html: "<span id=\"x\">\n  Fast\n  bike.\n</span>", expected: "Fast bike."},
		{name: "Blocks", html: `<div id="x"><p>one</p><p>two</p></div>`, expected: "one\ntwo"},
		{name: "Nested blocks break once", html: `<div id="x"><div><div>one</div></div><div>two</div></div>`, expected: "one\ntwo"},
		{name: "Inline elements", html: `<div id="x"><b>Road</b> <i>150</i></div>`, expected: "Road 150"},
		{name: "Scripts dropped", html: `<div id="x">a<script>var b;</script></div>`, expected: "a"},
		{name: "Empty", html: `<div id="x"></div>`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Document(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, InnerText(doc.Find("#x")))
		})
	}
}

func TestApply_BrInValue(t *testing.T) {
	doc, err := Document(`<div class="container">
  <div class="row"><span class="title">Product<br>Name</span><span class="value">Road-150<br>Red</span></div>
</div>`)
	require.NoError(t, err)

	rec := detailTable.Apply(doc.Find("div.container"))
	//label breaks collapse for the comparison, value breaks are kept
	assert.Equal(t, "Road-150\nRed", rec["name"])
}
