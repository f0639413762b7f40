package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Error kinds surfaced by the reservation core. Handlers map these to
// stable HTTP responses; storage detail never crosses the boundary.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInsufficientTickets = errors.New("insufficient tickets remaining")
	ErrNotTicketOwner      = errors.New("ticket belongs to another user")
	ErrEventHasSales       = errors.New("event has sold tickets")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnavailable         = errors.New("storage unavailable, retry")
)

// classifyStorageError folds lock/serialization timeouts into ErrUnavailable,
// the only kind a caller may retry. Everything else passes through.
func classifyStorageError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"55P03": // lock_not_available
			return fmt.Errorf("%w: %s", ErrUnavailable, pqErr.Code)
		}
	}

	return err
}
