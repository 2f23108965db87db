package campaign

import (
	"errors"

	"gooddelivery/internal/core/domain/model/kernel"
)

// OperatorAssignment links a staff operator to a delivery point.
// A multi-tenant operator may act on deliveries chosen for other points.
type OperatorAssignment struct {
	id              kernel.UUID
	operatorID      kernel.UUID
	deliveryPointID kernel.UUID
	multiTenant     bool
	isActive        bool
}

// NewOperatorAssignment creates an active operator assignment.
func NewOperatorAssignment(id, operatorID, deliveryPointID kernel.UUID, multiTenant bool) (*OperatorAssignment, error) {
	if err := errors.Join(id.Validate(), operatorID.Validate(), deliveryPointID.Validate()); err != nil {
		return nil, err
	}

	return &OperatorAssignment{
		id:              id,
		operatorID:      operatorID,
		deliveryPointID: deliveryPointID,
		multiTenant:     multiTenant,
		isActive:        true,
	}, nil
}

// RestoreOperatorAssignment reconstructs an assignment from persistence.
func RestoreOperatorAssignment(id, operatorID, deliveryPointID kernel.UUID, multiTenant, isActive bool) (*OperatorAssignment, error) {
	a, err := NewOperatorAssignment(id, operatorID, deliveryPointID, multiTenant)
	if err != nil {
		return nil, err
	}

	a.isActive = isActive
	return a, nil
}

// ID returns the assignment's unique identifier.
func (a *OperatorAssignment) ID() kernel.UUID {
	return a.id
}

// OperatorID returns the assigned operator's identifier.
func (a *OperatorAssignment) OperatorID() kernel.UUID {
	return a.operatorID
}

// DeliveryPointID returns the point the operator is assigned to.
func (a *OperatorAssignment) DeliveryPointID() kernel.UUID {
	return a.deliveryPointID
}

// MultiTenant reports whether the operator may act across points.
func (a *OperatorAssignment) MultiTenant() bool {
	return a.multiTenant
}

// IsActive reports whether the assignment is active.
func (a *OperatorAssignment) IsActive() bool {
	return a.isActive
}

// Deactivate marks the assignment inactive.
func (a *OperatorAssignment) Deactivate() {
	a.isActive = false
}

// UserAssignment links an end user to the delivery point serving them.
type UserAssignment struct {
	id              kernel.UUID
	userID          kernel.UUID
	deliveryPointID kernel.UUID
}

// NewUserAssignment creates a user assignment.
func NewUserAssignment(id, userID, deliveryPointID kernel.UUID) (*UserAssignment, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), deliveryPointID.Validate()); err != nil {
		return nil, err
	}

	return &UserAssignment{
		id:              id,
		userID:          userID,
		deliveryPointID: deliveryPointID,
	}, nil
}

// ID returns the assignment's unique identifier.
func (a *UserAssignment) ID() kernel.UUID {
	return a.id
}

// UserID returns the assigned user's identifier.
func (a *UserAssignment) UserID() kernel.UUID {
	return a.userID
}

// DeliveryPointID returns the point the user is assigned to.
func (a *UserAssignment) DeliveryPointID() kernel.UUID {
	return a.deliveryPointID
}
