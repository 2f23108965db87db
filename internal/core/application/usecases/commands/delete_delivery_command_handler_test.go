package commands_test

import (
	"testing"
	"time"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	pointID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)

	cmd, err := commands.NewDeleteDeliveryCommand(booking.ID(), kernel.NewUUID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.deliveries.On("CountForRecipient", ctx, camp.ID(), booking.RecipientID(), booking.GoodID(),
		booking.DeliveryPointID()).Return(1, nil).Once()
	f.deliveries.On("Delete", ctx, booking.ID()).Return(nil).Once()
	f.audit.On("Append", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()
	f.expectCommit()

	h := commands.NewDeleteDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	f.deliveries.AssertExpectations(t)
	f.audit.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestDeleteDeliveryCommandHandler_Handle_DeliveredRecordProtected(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	pointID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)
	_, err := booking.MarkDelivered(time.Now(), pointID, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewDeleteDeliveryCommand(booking.ID(), kernel.NewUUID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.deliveries.On("CountForRecipient", ctx, camp.ID(), booking.RecipientID(), booking.GoodID(),
		booking.DeliveryPointID()).Return(1, nil).Once()

	h := commands.NewDeleteDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotDeleteDelivery)
	f.deliveries.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteDeliveryCommandHandler_Handle_SolePrefilledRecordProtected(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	// Operators cannot create deliveries here, so the sole record for the
	// recipient was prefilled by the system and must survive.
	camp := restoredCampaign(t, false, true)
	pointID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)

	cmd, err := commands.NewDeleteDeliveryCommand(booking.ID(), kernel.NewUUID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.deliveries.On("CountForRecipient", ctx, camp.ID(), booking.RecipientID(), booking.GoodID(),
		booking.DeliveryPointID()).Return(1, nil).Once()

	h := commands.NewDeleteDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotDeleteDelivery)
}

func TestDeleteDeliveryCommandHandler_Handle_SecondPrefilledRecordDeletable(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, false, true)
	pointID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)

	cmd, err := commands.NewDeleteDeliveryCommand(booking.ID(), kernel.NewUUID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.deliveries.On("CountForRecipient", ctx, camp.ID(), booking.RecipientID(), booking.GoodID(),
		booking.DeliveryPointID()).Return(2, nil).Once()
	f.deliveries.On("Delete", ctx, booking.ID()).Return(nil).Once()
	f.audit.On("Append", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()
	f.expectCommit()

	h := commands.NewDeleteDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	f.deliveries.AssertExpectations(t)
}
