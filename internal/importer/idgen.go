package importer

import "github.com/google/uuid"

// IDGenerator supplies collision-free identifiers for products and variants.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
