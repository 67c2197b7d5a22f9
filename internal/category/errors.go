package category

import "errors"

var (
	ErrEmptyTable        = errors.New("category table is empty")
	ErrEmptyCategoryName = errors.New("category name is empty")
	ErrDuplicateCategory = errors.New("duplicate category name")
)
