package model

type Category struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	ParentCategoryID *string                `json:"parentCategoryId"` // Nullable
	Attributes       map[string]interface{} `json:"attributes,omitempty"`
}
