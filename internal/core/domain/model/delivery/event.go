package delivery

import (
	"fmt"
	"time"

	"gooddelivery/internal/core/domain/model/kernel"
)

// StateChange describes a completed lifecycle transition. Transition methods
// return it instead of writing to any logging side-channel; the caller
// decides whether to persist it, typically as an audit entry.
type StateChange struct {
	DeliveryID kernel.UUID
	From       Status
	To         Status
	ActorID    kernel.UUID
	OccurredAt time.Time
}

// Message renders a human-readable description of the transition.
func (c StateChange) Message() string {
	return fmt.Sprintf("delivery %s: %s -> %s", c.DeliveryID, c.From, c.To)
}
