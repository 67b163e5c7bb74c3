package model

type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Handle      string           `json:"handle"`
	Description string           `json:"description"`
	CategoryID  string           `json:"categoryId"`
	Type        string           `json:"type"`
	Status      string           `json:"status,omitempty"` // Empty when status propagation is disabled
	Tags        []string         `json:"tags"`
	Variants    []ProductVariant `json:"variants"`
}

type ProductVariant struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Price          float64           `json:"price"`
	CompareAtPrice float64           `json:"compareAtPrice"`
	Image          string            `json:"image"`
	Attributes     map[string]string `json:"attributes"`
}
