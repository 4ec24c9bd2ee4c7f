package settings

import "errors"

var (
	ErrNotFound      = errors.New("settings record not found")
	ErrInvalidRecord = errors.New("invalid settings record")
)
