package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fekuna/omnipos-catalog-importer/internal/model"
)

// JSONFileSink writes the nested product document. The write is atomic:
// either the full document replaces the target path or nothing is left
// behind.
type JSONFileSink struct {
	Path string
}

func NewJSONFileSink(path string) *JSONFileSink {
	return &JSONFileSink{Path: path}
}

func (s *JSONFileSink) Write(ctx context.Context, products []model.Product) error {
	if products == nil {
		products = []model.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".products-*.json")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
