package category

type UseCase interface {
	// CategoryIDForPath resolves a taxonomy path like "Apparel > Shoes > Sneakers"
	// to the ID of the category whose name matches the trailing segment.
	// Unresolvable or empty paths resolve to the uncategorized sentinel ID.
	CategoryIDForPath(path string) string
}
