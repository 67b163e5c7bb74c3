package importer

import (
	"context"

	"github.com/fekuna/omnipos-catalog-importer/internal/model"
)

// RowSource is a pull-based stream of parsed export rows. Next returns
// io.EOF when the stream is exhausted.
type RowSource interface {
	Header() []string
	Next(ctx context.Context) (Row, error)
}

// Sink receives the completed product list at the end of a successful run.
type Sink interface {
	Write(ctx context.Context, products []model.Product) error
}

type UseCase interface {
	// Import drives the row stream through the accumulator and hands the
	// finished products to every sink. Returns the number of products
	// written. Any error aborts the run before sinks are written.
	Import(ctx context.Context, source RowSource, sinks ...Sink) (int, error)
}

// Options selects the optional pipeline capabilities. Historically the
// importer existed as two near-duplicate pipelines, one resolving category
// IDs and propagating status and one doing neither; both are this one
// pipeline with the capabilities toggled.
type Options struct {
	ResolveCategories bool
	PropagateStatus   bool
	MetafieldKeyMode  MetafieldKeyMode
	UncategorizedID   string
}
