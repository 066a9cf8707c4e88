package models

// Page is one page of a keyset-paginated query.
// An empty NextCursor means there are no more pages.
type Page[T any] struct {
	Items      []T
	NextCursor string
}
