package storage

import (
	"os"
	"path/filepath"
	"testing"

	"go-eshop-scraper/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleOffers = []scraper.Offer{
	{
		Title:       "Trek Domane, Size 56, Red",
		Price:       "$1,299.00",
		Rate:        "4.5",
		DetailURL:   "https://demos.telerik.com/aspnet-core/eshop/Products/Details/7",
		ProductName: "Trek Domane",
		ProductNo:   "BK-R93R-56",
		Size:        "56",
		Weight:      "8.2",
		Color:       "Red",
		Description: "Endurance road bike with \"IsoSpeed\"\nand carbon fork",
	},
	{
		//card without link: detail columns stay empty
		Title: "Cannondale CAAD13",
		Price: "$999.00",
	},
}

func TestWriteOffers_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "offers.csv")
	require.NoError(t, WriteOffers(path, sampleOffers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Title,Price,Rate,Detail URL,Product Name,Product No,Size,Weight,Color,Description\n")
	assert.Contains(t, string(data), "\"Trek Domane, Size 56, Red\",\"$1,299.00\"")
	assert.Contains(t, string(data), "Cannondale CAAD13,$999.00,,,,,,,,\n")
}

func TestReadOffers_RoundTripsWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.csv")
	require.NoError(t, WriteOffers(path, sampleOffers))

	got, err := ReadOffers(path)
	require.NoError(t, err)
	assert.Equal(t, sampleOffers, got)
}

func TestReadOffers_ColumnsByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.csv")
	body := "Price,Title,Extra\n$10,Bike A,x\n$20,,y\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	got, err := ReadOffers(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, scraper.Offer{Title: "Bike A", Price: "$10"}, got[0])
	//absent title is read back as empty, the row is kept
	assert.Equal(t, scraper.Offer{Price: "$20"}, got[1])
}

func TestReadOffers_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	got, err := ReadOffers(path)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadOffers_MissingFile(t *testing.T) {
	_, err := ReadOffers(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteMatches_Deterministic(t *testing.T) {
	matches := []scraper.Match{
		{SearchedTitle: "trek domane", FoundTitle: "TREK DOMANE AL 2", Price: "$899.00", Rate: "4"},
		{SearchedTitle: "trek domane", FoundTitle: "Trek Domane SL 5", Price: "$2,199.00", Rate: ""},
	}
	dir := t.TempDir()
	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")
	require.NoError(t, WriteMatches(first, matches))
	require.NoError(t, WriteMatches(second, matches))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "Searched Title,Found Title,Price,Rate\n"+
		"trek domane,TREK DOMANE AL 2,$899.00,4\n"+
		"trek domane,Trek Domane SL 5,\"$2,199.00\",\n", string(a))
}

func TestWriteMatches_EmptyWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	require.NoError(t, WriteMatches(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Searched Title,Found Title,Price,Rate\n", string(data))
}
