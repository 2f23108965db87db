package commands_test

import (
	"errors"
	"testing"
	"time"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiredCampaign(t *testing.T) *campaign.Campaign {
	t.Helper()
	c, err := campaign.NewCampaign(kernel.NewUUID(), "Old Drive", "old-drive",
		time.Now().Add(-48*time.Hour), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	return c
}

func TestExpireCampaignsCommandHandler_Handle_DeactivatesExpired(t *testing.T) {
	ctx := t.Context()
	first := expiredCampaign(t)
	second := expiredCampaign(t)

	repo := new(MockCampaignRepository)
	uow := new(MockCampaignUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("CampaignRepository").Return(repo).Once()
	repo.On("FindActiveExpired", ctx, mock.AnythingOfType("time.Time")).
		Return([]*campaign.Campaign{first, second}, nil).Once()
	repo.On("Update", ctx, first).Return(nil).Once()
	repo.On("Update", ctx, second).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockCampaignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireCampaignsCommandHandler(factory)
	err := h.Handle(ctx, commands.NewExpireCampaignsCommand())

	require.NoError(t, err)
	assert.False(t, first.IsActive())
	assert.False(t, second.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireCampaignsCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()

	repo := new(MockCampaignRepository)
	uow := new(MockCampaignUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("CampaignRepository").Return(repo).Once()
	repo.On("FindActiveExpired", ctx, mock.AnythingOfType("time.Time")).
		Return([]*campaign.Campaign{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockCampaignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireCampaignsCommandHandler(factory)
	err := h.Handle(ctx, commands.NewExpireCampaignsCommand())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExpireCampaignsCommandHandler_Handle_FindError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockCampaignRepository)
	uow := new(MockCampaignUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("CampaignRepository").Return(repo).Once()
	repo.On("FindActiveExpired", ctx, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("db error")).Once()

	factory := new(MockCampaignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireCampaignsCommandHandler(factory)
	err := h.Handle(ctx, commands.NewExpireCampaignsCommand())

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
