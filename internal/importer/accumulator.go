package importer

import (
	"github.com/fekuna/omnipos-catalog-importer/internal/category"
	"github.com/fekuna/omnipos-catalog-importer/internal/model"
)

// Accumulator is the stateful core of the import: it consumes normalized
// rows in stream order, opens a product whenever the handle changes, carries
// the attribute state forward, and appends one variant per row. It owns the
// carry-forward maps and the open product exclusively; the transform is
// strictly sequential.
//
// Grouping is single-lookback: a handle that reappears after an intervening
// different handle opens a second, distinct product rather than merging into
// the earlier one.
type Accumulator struct {
	opts       Options
	ids        IDGenerator
	categories category.UseCase
	attrs      *AttributeResolver

	state   AttributeState
	current *model.Product
	done    []model.Product
}

func NewAccumulator(opts Options, ids IDGenerator, categories category.UseCase, attrs *AttributeResolver) *Accumulator {
	return &Accumulator{
		opts:       opts,
		ids:        ids,
		categories: categories,
		attrs:      attrs,
	}
}

// Consume processes one row: one attribute fold step, then product-boundary
// handling, then the variant append. Every row produces exactly one variant;
// rows are never dropped.
func (a *Accumulator) Consume(rec Record, row Row) {
	state, attributes := a.attrs.Resolve(a.state, row)
	a.state = state

	if a.current == nil || a.current.Handle != rec.Handle {
		if a.current != nil {
			a.done = append(a.done, *a.current)
		}
		a.current = a.openProduct(rec)
	}

	a.current.Variants = append(a.current.Variants, model.ProductVariant{
		ID:             a.ids.NewID(),
		SKU:            rec.SKU,
		Price:          rec.Price,
		CompareAtPrice: rec.CompareAtPrice,
		Image:          rec.Image,
		Attributes:     attributes,
	})
}

func (a *Accumulator) openProduct(rec Record) *model.Product {
	categoryID := a.opts.UncategorizedID
	if a.opts.ResolveCategories {
		// Resolution only takes effect at product-creation time; variant
		// rows repeating the path do not re-resolve the open product.
		categoryID = a.categories.CategoryIDForPath(rec.CategoryPath)
	}

	status := ""
	if a.opts.PropagateStatus {
		status = rec.Status
	}

	return &model.Product{
		ID:          a.ids.NewID(),
		Title:       rec.Title,
		Handle:      rec.Handle,
		Description: rec.Description,
		CategoryID:  categoryID,
		Type:        rec.Type,
		Status:      status,
		Tags:        rec.Tags,
	}
}

// Flush closes the open product, if any, and returns every completed product
// in first-appearance order of their handles. Call once at end of stream.
func (a *Accumulator) Flush() []model.Product {
	if a.current != nil {
		a.done = append(a.done, *a.current)
		a.current = nil
	}
	return a.done
}
