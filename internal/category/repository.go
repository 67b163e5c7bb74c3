package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-importer/internal/model"
)

type Repository interface {
	LoadAll(ctx context.Context) ([]model.Category, error)
}
