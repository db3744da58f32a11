package model

import "errors"

var (
	// Lookup Errors
	ErrAuthorNotFound = errors.New("author not found")

	// Seed Errors
	ErrEmptyAuthorName    = errors.New("author name is empty")
	ErrUnsupportedSeed    = errors.New("unsupported seed file format")
	ErrMissingSeedColumns = errors.New("seed sheet is missing required columns")
)
