package notification

import "errors"

var ErrUnknownCategory = errors.New("Unknown notification category")
