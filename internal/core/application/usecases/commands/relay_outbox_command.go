package commands

import (
	"errors"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

const (
	// DefaultRelayBatchSize bounds how many messages one relay run publishes.
	DefaultRelayBatchSize = 100
	maxRelayBatchSize     = 10_000
)

// RelayOutboxCommand publishes the oldest unsent outbox messages.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize < 0 || batchSize > maxRelayBatchSize {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 0, maxRelayBatchSize)
	}
	if batchSize == 0 {
		batchSize = DefaultRelayBatchSize
	}
	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
