package casino

import "errors"

var (
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrInsufficientFunds  = errors.New("insufficient_funds")
	ErrStorageUnavailable = errors.New("storage_unavailable")
)
