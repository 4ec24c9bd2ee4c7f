package postgres

import "errors"

var ErrEmptyID = errors.New("empty id")
