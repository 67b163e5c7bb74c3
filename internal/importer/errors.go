package importer

import "errors"

var (
	// ErrMissingColumn means a required column is absent from the header row.
	// Detected at stream start so a whole run is never processed with
	// silently empty fields.
	ErrMissingColumn = errors.New("required column missing from header")

	// ErrMalformedNumber means a price-like column holds non-numeric,
	// non-empty text. Coercing it to zero would corrupt downstream pricing,
	// so the run is rejected instead.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrMissingPrice means the Price column is empty. Compare At Price is
	// the only price field with a defined empty-to-zero fallback.
	ErrMissingPrice = errors.New("price is empty")
)
