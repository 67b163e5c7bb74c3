package sink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-catalog-importer/internal/model"
)

func TestJSONFileSink_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")

	products := []model.Product{{
		ID:          "p-1",
		Title:       "Trail Shoe",
		Handle:      "trail-shoe",
		Description: "A shoe",
		CategoryID:  "cat-1",
		Type:        "Footwear",
		Status:      "active",
		Tags:        []string{"outdoor"},
		Variants: []model.ProductVariant{{
			ID:             "v-1",
			SKU:            "TS-1",
			Price:          79.99,
			CompareAtPrice: 0,
			Image:          "https://cdn.example.com/ts.jpg",
			Attributes:     map[string]string{"color": "Red"},
		}},
	}}

	require.NoError(t, NewJSONFileSink(path).Write(context.Background(), products))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Document field names are the export document's camelCase contract.
	var doc []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "cat-1", doc[0]["categoryId"])
	variants := doc[0]["variants"].([]interface{})
	variant := variants[0].(map[string]interface{})
	assert.Equal(t, 79.99, variant["price"])
	assert.Equal(t, float64(0), variant["compareAtPrice"])
	assert.Equal(t, map[string]interface{}{"color": "Red"}, variant["attributes"])
}

func TestJSONFileSink_EmptyListWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")

	require.NoError(t, NewJSONFileSink(path).Write(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestJSONFileSink_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, NewJSONFileSink(path).Write(context.Background(), []model.Product{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
