package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// metafieldColumn matches export columns like "Brand (product.metafields.custom.brand)".
var metafieldColumn = regexp.MustCompile(`^(.*?)\s*\(product\.metafields\.([^)]+)\)\s*$`)

// MetafieldKeyMode selects how a metafield column header becomes an
// attribute key. The export format supports both readings; which one a
// catalog uses is a configuration choice, not something to guess per run.
type MetafieldKeyMode string

const (
	// MetafieldKeyLabel keys by the human-readable label before the
	// parenthesis, lower-cased ("Brand (product.metafields.custom.brand)"
	// -> "brand"). The default.
	MetafieldKeyLabel MetafieldKeyMode = "label"

	// MetafieldKeyInternal keys by the internal key after the
	// "product.metafields." prefix, lower-cased ("custom.brand").
	MetafieldKeyInternal MetafieldKeyMode = "key"
)

// AttributeState is the carry-forward context of the row fold: the option
// name/value pairs and metafield values most recently defined by an explicit
// row. Both start empty; rows that define no explicit pairs inherit the
// previous state unchanged. State values are never mutated after creation,
// so one fold step is (state, row) -> (state, attributes).
type AttributeState struct {
	optionNames map[string]string
	metafields  map[string]string
}

type AttributeResolver struct {
	keyMode MetafieldKeyMode
}

func NewAttributeResolver(mode MetafieldKeyMode) *AttributeResolver {
	if mode == "" {
		mode = MetafieldKeyLabel
	}
	return &AttributeResolver{keyMode: mode}
}

// Resolve performs one fold step: it returns the next carry-forward state
// and the variant attribute map for this row (inherited options overlaid
// with inherited metafields, metafields winning on key collision).
//
// The export only carries option names and metafield values on the row
// where the product's non-variant fields are populated; later variant rows
// repeat only the differing option values. A row that does define explicit
// pairs therefore REPLACES the corresponding state wholesale rather than
// merging into it: redefined option name sets fully supersede the old set.
func (r *AttributeResolver) Resolve(st AttributeState, row Row) (AttributeState, map[string]string) {
	if options := explicitOptions(row); len(options) > 0 {
		st.optionNames = options
	}
	if metafields := r.explicitMetafields(row); len(metafields) > 0 {
		st.metafields = metafields
	}

	attributes := make(map[string]string, len(st.optionNames)+len(st.metafields))
	for name, value := range st.optionNames {
		attributes[name] = value
	}
	for name, value := range st.metafields {
		attributes[name] = value
	}
	return st, attributes
}

// explicitOptions collects the option pairs defined by this row itself:
// slots 1..3 where both the name and the value column are non-empty.
func explicitOptions(row Row) map[string]string {
	options := map[string]string{}
	for i := 1; i <= 3; i++ {
		name := row[fmt.Sprintf("Option%d Name", i)]
		value := row[fmt.Sprintf("Option%d Value", i)]
		if name != "" && value != "" {
			options[strings.ToLower(name)] = value
		}
	}
	return options
}

func (r *AttributeResolver) explicitMetafields(row Row) map[string]string {
	metafields := map[string]string{}
	for col, value := range row {
		if value == "" {
			continue
		}
		m := metafieldColumn.FindStringSubmatch(col)
		if m == nil {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(m[1]))
		if r.keyMode == MetafieldKeyInternal {
			key = strings.ToLower(strings.TrimSpace(m[2]))
		}
		metafields[key] = value
	}
	return metafields
}
