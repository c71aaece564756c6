package services

import "errors"

var (
	ErrValidation = errors.New("dish name and price are required")
	ErrDuplicate  = errors.New("dish already on the menu")
	ErrNotFound   = errors.New("dish not on the menu")
	ErrStorage    = errors.New("storage error")
)
