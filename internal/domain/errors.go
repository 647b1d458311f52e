package domain

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrTitleRequired         = errors.New("title required")
	ErrDescriptionRequired   = errors.New("description required")
	ErrVenueRequired         = errors.New("venue required")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidID             = errors.New("invalid id")
)
