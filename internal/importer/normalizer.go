package importer

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the typed view of one row, with scalars coerced and validated.
type Record struct {
	Title          string
	Handle         string
	Description    string
	CategoryPath   string
	Type           string
	Status         string
	Tags           []string
	SKU            string
	Price          float64
	CompareAtPrice float64
	Image          string
}

// NormalizeRow coerces one raw row into a Record. line is the 1-based
// position in the source file (header included) and only feeds diagnostics.
func NormalizeRow(row Row, line int) (Record, error) {
	price, err := parsePrice(row[ColPrice], ColPrice, line)
	if err != nil {
		return Record{}, err
	}
	compareAt, err := parseCompareAtPrice(row[ColCompareAtPrice], line)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Title:          row[ColTitle],
		Handle:         row[ColHandle],
		Description:    row[ColDescription],
		CategoryPath:   categoryPath(row),
		Type:           row[ColType],
		Status:         row[ColStatus],
		Tags:           splitTags(row[ColTags]),
		SKU:            row[ColSKU],
		Price:          price,
		CompareAtPrice: compareAt,
		Image:          row[ColImage],
	}, nil
}

// categoryPath accepts either export spelling of the category column.
func categoryPath(row Row) string {
	if path, ok := row[ColProductCategory]; ok && path != "" {
		return path
	}
	return row[ColCategory]
}

func splitTags(raw string) []string {
	tags := []string{}
	if raw == "" {
		return tags
	}
	for _, tag := range strings.Split(raw, ",") {
		tags = append(tags, strings.TrimSpace(tag))
	}
	return tags
}

func parsePrice(raw, col string, line int) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("row %d, column %q: %w", line, col, ErrMissingPrice)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d, column %q: %q: %w", line, col, raw, ErrMalformedNumber)
	}
	return price, nil
}

func parseCompareAtPrice(raw string, line int) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// Empty means "no compare-at price" in the source system.
		return 0, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d, column %q: %q: %w", line, ColCompareAtPrice, raw, ErrMalformedNumber)
	}
	return price, nil
}
