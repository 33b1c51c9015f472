package commands

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand represents a sweep request that cancels orders
// left in Pending longer than the given age. It is issued by the
// background job rather than by users.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a sweep command. The age threshold
// must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	cmd := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the age threshold past which a pending order is
// considered abandoned.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"olderThan is invalid",
			fmt.Errorf("%s is not positive", olderThan),
		)
	}
	c.olderThan = olderThan
	return nil
}
