package service

import "errors"

var (
	// ErrCatalogUnavailable means the catalog could not be read; it is
	// distinct from a product having no greener alternative.
	ErrCatalogUnavailable = errors.New("product catalog unavailable")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPoints      = errors.New("points must not be negative")
)
