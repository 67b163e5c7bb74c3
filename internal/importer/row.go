package importer

import "fmt"

// Row is one parsed line of the export, keyed by header column name.
type Row map[string]string

// Column names of the Shopify-style export schema. Case-sensitive.
const (
	ColTitle           = "Title"
	ColHandle          = "Handle"
	ColDescription     = "Description"
	ColProductCategory = "Product Category"
	ColCategory        = "Category"
	ColType            = "Type"
	ColTags            = "Tags"
	ColSKU             = "Variant SKU"
	ColPrice           = "Price"
	ColCompareAtPrice  = "Compare At Price"
	ColImage           = "Image"
	ColStatus          = "Status"
)

var requiredColumns = []string{
	ColTitle,
	ColHandle,
	ColDescription,
	ColType,
	ColTags,
	ColSKU,
	ColPrice,
	ColCompareAtPrice,
	ColImage,
	ColStatus,
}

// ValidateHeader fails fast when a required column is absent. The category
// column is accepted under either export spelling and is only required when
// category resolution is enabled.
func ValidateHeader(header []string, needCategory bool) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	if needCategory && !present[ColProductCategory] && !present[ColCategory] {
		return fmt.Errorf("%w: %q or %q", ErrMissingColumn, ColProductCategory, ColCategory)
	}
	return nil
}
