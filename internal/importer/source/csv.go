package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/omnipos-catalog-importer/internal/importer"
)

// CSVSource streams header-keyed rows out of a Shopify-style export file.
type CSVSource struct {
	reader *csv.Reader
	header []string
}

func NewCSVSource(r io.Reader) (*CSVSource, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true // exports are sometimes loosely quoted
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return &CSVSource{reader: reader, header: header}, nil
}

func (s *CSVSource) Header() []string {
	return s.header
}

// Next returns the next row keyed by header column, or io.EOF at end of
// stream. Short records leave their trailing columns absent.
func (s *CSVSource) Next(ctx context.Context) (importer.Row, error) {
	record, err := s.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(importer.Row, len(s.header))
	for i, col := range s.header {
		if i < len(record) {
			row[col] = record[i]
		}
	}
	return row, nil
}
