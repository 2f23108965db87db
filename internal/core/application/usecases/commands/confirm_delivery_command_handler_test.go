package commands_test

import (
	"testing"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	pointID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)

	cmd, err := commands.NewConfirmDeliveryCommand(booking.ID(), booking.RecipientID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.stocks.On("GetByPointAndGood", ctx, pointID, booking.GoodID()).Return(nil, nil).Once()
	f.deliveries.On("Update", ctx, booking).Return(nil).Once()
	f.audit.On("Append", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()
	f.expectCommit()

	h := commands.NewConfirmDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, booking.Status())
	require.NotNil(t, booking.DeliveredByID())
	assert.True(t, booking.DeliveredByID().IsEqual(booking.RecipientID()))
	f.deliveries.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_KeepsOperatorAttribution(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	pointID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)
	require.NoError(t, booking.RecordDeliveringOperator(operatorID))

	cmd, err := commands.NewConfirmDeliveryCommand(booking.ID(), booking.RecipientID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.stocks.On("GetByPointAndGood", ctx, pointID, booking.GoodID()).Return(nil, nil).Once()
	f.deliveries.On("Update", ctx, booking).Return(nil).Once()
	f.audit.On("Append", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()
	f.expectCommit()

	h := commands.NewConfirmDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, booking.DeliveredByID())
	assert.True(t, booking.DeliveredByID().IsEqual(operatorID))
}

func TestConfirmDeliveryCommandHandler_Handle_WrongRecipient(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	booking := waitingBooking(t, camp.ID(), kernel.NewUUID())

	cmd, err := commands.NewConfirmDeliveryCommand(booking.ID(), kernel.NewUUID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()

	h := commands.NewConfirmDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNotDeliveryRecipient)
	assert.Equal(t, delivery.Waiting, booking.Status())
}

func TestConfirmDeliveryCommandHandler_Handle_NoAgreementCampaign(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	camp.SetRequireAgreement(false)
	booking := waitingBooking(t, camp.ID(), kernel.NewUUID())

	cmd, err := commands.NewConfirmDeliveryCommand(booking.ID(), booking.RecipientID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()

	h := commands.NewConfirmDeliveryCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotConfirmDelivery)
	f.deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
