package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

var (
	// ErrInvalid wraps every input validation failure of an action.
	ErrInvalid = errors.New("invalid input")

	// ErrAccountNotFound is returned when a transaction references a missing account.
	ErrAccountNotFound = errors.New("account not found")
)

// IAction is a write performed inside one storage transaction. Events is
// called only after the transaction committed.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
	Events() []events.Event
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, err)
}
