package repository

import "errors"

var (
	// ErrEmptyCatalog the source held no usable records
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrUnsupportedCatalog no parser for the file extension
	ErrUnsupportedCatalog = errors.New("unsupported catalog format")
)
