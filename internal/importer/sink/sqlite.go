package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-catalog-importer/internal/model"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteSink writes the imported catalog into a SQLite database as a
// queryable secondary output. Tags and attributes are stored as JSON text.
type SQLiteSink struct {
	DB *sqlx.DB
}

func NewSQLiteSink(db *sqlx.DB) *SQLiteSink {
	return &SQLiteSink{DB: db}
}

func OpenSQLite(path string) (*sqlx.DB, error) {
	return sqlx.Open("sqlite", path)
}

type productRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Handle      string `db:"handle"`
	Description string `db:"description"`
	CategoryID  string `db:"category_id"`
	Type        string `db:"type"`
	Status      string `db:"status"`
	Tags        string `db:"tags"`
}

type variantRow struct {
	ID             string  `db:"id"`
	ProductID      string  `db:"product_id"`
	SKU            string  `db:"sku"`
	Price          float64 `db:"price"`
	CompareAtPrice float64 `db:"compare_at_price"`
	Image          string  `db:"image"`
	Attributes     string  `db:"attributes"`
}

func (s *SQLiteSink) Write(ctx context.Context, products []model.Product) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS product_variants`,
		`DROP TABLE IF EXISTS products`,
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			handle TEXT NOT NULL,
			description TEXT,
			category_id TEXT,
			type TEXT,
			status TEXT,
			tags TEXT
		)`,
		`CREATE TABLE product_variants (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id),
			sku TEXT,
			price REAL NOT NULL,
			compare_at_price REAL NOT NULL,
			image TEXT,
			attributes TEXT
		)`,
		`CREATE INDEX idx_products_handle ON products(handle)`,
		`CREATE INDEX idx_product_variants_product_id ON product_variants(product_id)`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("prepare catalog schema: %w", err)
		}
	}

	insertProduct := `
        INSERT INTO products (id, title, handle, description, category_id, type, status, tags)
        VALUES (:id, :title, :handle, :description, :category_id, :type, :status, :tags)
    `
	insertVariant := `
        INSERT INTO product_variants (id, product_id, sku, price, compare_at_price, image, attributes)
        VALUES (:id, :product_id, :sku, :price, :compare_at_price, :image, :attributes)
    `

	for _, p := range products {
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags for product %s: %w", p.ID, err)
		}
		if _, err := tx.NamedExecContext(ctx, insertProduct, productRow{
			ID:          p.ID,
			Title:       p.Title,
			Handle:      p.Handle,
			Description: p.Description,
			CategoryID:  p.CategoryID,
			Type:        p.Type,
			Status:      p.Status,
			Tags:        string(tags),
		}); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}

		for _, v := range p.Variants {
			attributes, err := json.Marshal(v.Attributes)
			if err != nil {
				return fmt.Errorf("marshal attributes for variant %s: %w", v.ID, err)
			}
			if _, err := tx.NamedExecContext(ctx, insertVariant, variantRow{
				ID:             v.ID,
				ProductID:      p.ID,
				SKU:            v.SKU,
				Price:          v.Price,
				CompareAtPrice: v.CompareAtPrice,
				Image:          v.Image,
				Attributes:     string(attributes),
			}); err != nil {
				return fmt.Errorf("insert variant %s: %w", v.ID, err)
			}
		}
	}

	return tx.Commit()
}
