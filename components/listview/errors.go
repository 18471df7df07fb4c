package listview

import "errors"

var (
	ErrInvalidConfig     = errors.New("listview: invalid configuration")
	ErrUnknownField      = errors.New("listview: unknown field")
	ErrUnknownFilter     = errors.New("listview: unknown filter")
	ErrNotSortable       = errors.New("listview: field is not sortable")
	ErrUnknownList       = errors.New("listview: unknown list")
	ErrMissingSource     = errors.New("listview: record source not configured")
	ErrDeleteUnsupported = errors.New("listview: record source does not support deletion")
)
