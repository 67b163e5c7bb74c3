package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fekuna/omnipos-catalog-importer/internal/category"
	"github.com/fekuna/omnipos-catalog-importer/internal/importer"
	"github.com/fekuna/omnipos-catalog-importer/pkg/logger"
	"go.uber.org/zap"
)

type importUseCase struct {
	opts       importer.Options
	ids        importer.IDGenerator
	categories category.UseCase
	logger     logger.ZapLogger
}

func NewImportUseCase(opts importer.Options, ids importer.IDGenerator, categories category.UseCase, log logger.ZapLogger) importer.UseCase {
	return &importUseCase{
		opts:       opts,
		ids:        ids,
		categories: categories,
		logger:     log,
	}
}

func (uc *importUseCase) Import(ctx context.Context, source importer.RowSource, sinks ...importer.Sink) (int, error) {
	if err := importer.ValidateHeader(source.Header(), uc.opts.ResolveCategories); err != nil {
		return 0, err
	}

	acc := importer.NewAccumulator(uc.opts, uc.ids, uc.categories, importer.NewAttributeResolver(uc.opts.MetafieldKeyMode))

	line := 1 // the header row
	for {
		// Cooperative cancellation between rows: abort before the next row,
		// flush nothing.
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		row, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := importer.NormalizeRow(row, line)
		if err != nil {
			return 0, err
		}
		acc.Consume(rec, row)
	}

	products := acc.Flush()
	for _, sink := range sinks {
		if err := sink.Write(ctx, products); err != nil {
			return 0, err
		}
	}

	uc.logger.Info("Import complete",
		zap.Int("rows", line-1),
		zap.Int("products", len(products)),
	)
	return len(products), nil
}
