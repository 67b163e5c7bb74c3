package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-catalog-importer/internal/category"
	"github.com/fekuna/omnipos-catalog-importer/internal/model"
	"github.com/fekuna/omnipos-catalog-importer/pkg/logger"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	categories      []model.Category
	uncategorizedID string
	logger          logger.ZapLogger
}

// NewCategoryUseCase loads the taxonomy once and keeps it as an immutable
// lookup table for the whole run. A missing or unreadable taxonomy degrades
// to an empty list, so every lookup falls back to the uncategorized sentinel
// instead of aborting the run.
func NewCategoryUseCase(ctx context.Context, repo category.Repository, uncategorizedID string, log logger.ZapLogger) category.UseCase {
	categories, err := repo.LoadAll(ctx)
	if err != nil {
		log.Warn("Could not load category taxonomy, all products will be uncategorized", zap.Error(err))
		categories = nil
	} else {
		log.Info("Loaded category taxonomy", zap.Int("categories", len(categories)))
	}

	return &categoryUseCase{
		categories:      categories,
		uncategorizedID: uncategorizedID,
		logger:          log,
	}
}

func (uc *categoryUseCase) CategoryIDForPath(path string) string {
	name := leafName(path)
	if name == "" {
		return uc.uncategorizedID
	}

	// Linear scan, exact match on the leaf name only. Duplicate leaf names
	// resolve to the first entry in list order.
	for _, c := range uc.categories {
		if c.Name == name {
			return c.ID
		}
	}

	uc.logger.Debug("No taxonomy entry for category leaf",
		zap.String("leaf", name),
		zap.String("path", path),
	)
	return uc.uncategorizedID
}

func leafName(path string) string {
	levels := strings.Split(path, ">")
	return strings.TrimSpace(levels[len(levels)-1])
}
