package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-catalog-importer/internal/model"
)

type JSONFileRepository struct {
	Path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{Path: path}
}

func (r *JSONFileRepository) LoadAll(ctx context.Context) ([]model.Category, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse taxonomy file %s: %w", r.Path, err)
	}
	return categories, nil
}
