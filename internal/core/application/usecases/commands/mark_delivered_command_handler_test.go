package commands_test

import (
	"testing"
	"time"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitingBooking(t *testing.T, campaignID, pointID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), pointID, kernel.NewUUID(), kernel.NewUUID(), 1,
		&campaignID, nil, "",
		&pointID, nil, nil,
		nil, nil, nil,
		nil, nil, nil,
		"", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return d
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	// Operator confirmation is only allowed when no agreement is required.
	camp := restoredCampaign(t, true, true)
	camp.SetRequireAgreement(false)
	pointID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)

	cmd, err := commands.NewMarkDeliveredCommand(booking.ID(), operatorID, pointID)
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()
	f.stocks.On("GetByPointAndGood", ctx, pointID, booking.GoodID()).Return(nil, nil).Once()
	f.deliveries.On("Update", ctx, booking).Return(nil).Once()
	f.audit.On("Append", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()
	f.expectCommit()

	h := commands.NewMarkDeliveredCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, booking.Status())
	require.NotNil(t, booking.DeliveredByID())
	assert.True(t, booking.DeliveredByID().IsEqual(operatorID))
	f.deliveries.AssertExpectations(t)
	f.audit.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_AgreementRequired(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	pointID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)

	cmd, err := commands.NewMarkDeliveredCommand(booking.ID(), kernel.NewUUID(), pointID)
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()

	h := commands.NewMarkDeliveredCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotMarkDelivered)
	assert.Equal(t, delivery.Waiting, booking.Status())
	f.deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	camp := restoredCampaign(t, true, true)
	camp.SetRequireAgreement(false)
	pointID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	booking := waitingBooking(t, camp.ID(), pointID)
	_, err := booking.MarkDelivered(time.Now(), pointID, operatorID)
	require.NoError(t, err)

	cmd, err := commands.NewMarkDeliveredCommand(booking.ID(), operatorID, pointID)
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, booking.ID()).Return(booking, nil).Once()
	f.campaigns.On("Get", ctx, camp.ID()).Return(camp, nil).Once()

	h := commands.NewMarkDeliveredCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotMarkDelivered)
}

func TestMarkDeliveredCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	f := newDeliveryHandlerFixture()
	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewMarkDeliveredCommand(deliveryID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	f.deliveries.On("Get", ctx, deliveryID).
		Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID)).Once()

	h := commands.NewMarkDeliveredCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryNotFound)
}
