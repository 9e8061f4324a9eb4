package takaful

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrLoadingLocales    = errors.New("failed to load locales")
	ErrCreatingAPIClient = errors.New("failed to create api client")
)
