package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrCodeExists       = errors.New("Employee code already exists")
)
