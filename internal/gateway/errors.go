package gateway

import (
	"errors"
	"fmt"
)

// ErrPortal is wrapped by every portal failure.
var ErrPortal = errors.New("portal error")

var (
	ErrPortalTimeout       = fmt.Errorf("%w: no response in time", ErrPortal)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction not found", ErrPortal)
	ErrInvalidPortalData   = fmt.Errorf("%w: invalid data", ErrPortal)
)
