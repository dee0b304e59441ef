package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go-eshop-scraper/internal/scraper"
)

// WriteOffers writes offers with a header row, replacing any existing file.
func WriteOffers(path string, offers []scraper.Offer) error {
	rows := make([][]string, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, o.Row())
	}
	return writeFile(path, scraper.OfferHeader, rows)
}

// WriteMatches writes matches with a header row, replacing any existing file.
func WriteMatches(path string, matches []scraper.Match) error {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, m.Row())
	}
	return writeFile(path, scraper.MatchHeader, rows)
}

// ReadOffers loads an offers file written by WriteOffers. Columns are looked
// up by header name, so reordered or missing columns are tolerated.
func ReadOffers(path string) ([]scraper.Offer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var offers []scraper.Offer
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		col := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		offers = append(offers, scraper.Offer{
			Title:       col("Title"),
			Price:       col("Price"),
			Rate:        col("Rate"),
			DetailURL:   col("Detail URL"),
			ProductName: col("Product Name"),
			ProductNo:   col("Product No"),
			Size:        col("Size"),
			Weight:      col("Weight"),
			Color:       col("Color"),
			Description: col("Description"),
		})
	}
	return offers, nil
}

func writeFile(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	return f.Close()
}
