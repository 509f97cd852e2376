package domain

import "errors"

var (
	ErrNoSymbols        = errors.New("add at least one symbol")
	ErrNegativeLands    = errors.New("total lands must not be negative")
	ErrNegativeQuantity = errors.New("symbol quantities must not be negative")
	ErrUnknownColor     = errors.New("unknown color")
)
