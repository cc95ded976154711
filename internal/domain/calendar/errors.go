package calendar

import "errors"

var ErrInvalidMonth = errors.New("Month is out of range")
