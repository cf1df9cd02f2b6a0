package model

// Category groups products of the catalog.
type Category struct {
	ID   int64
	Name string
}

// Product is a catalog entry. Price is nullable in the legacy data set, so
// arithmetic over it must check for nil first. Stock never goes below zero.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       *int64
	Stock       int64
	Photo       string
	CategoryID  int64
}
