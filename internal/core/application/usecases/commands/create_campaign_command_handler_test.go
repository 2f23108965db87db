package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCampaignRepository struct{ mock.Mock }

func (m *MockCampaignRepository) Add(ctx context.Context, aggregate *campaign.Campaign) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCampaignRepository) Update(ctx context.Context, aggregate *campaign.Campaign) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCampaignRepository) Get(ctx context.Context, id kernel.UUID) (*campaign.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) GetBySlug(_ context.Context, _ string) (*campaign.Campaign, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCampaignRepository) FindActiveExpired(ctx context.Context, now time.Time) ([]*campaign.Campaign, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*campaign.Campaign), args.Error(1)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockCampaignUoW struct{ mock.Mock }

func (m *MockCampaignUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCampaignUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCampaignUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCampaignUoW) CampaignRepository() ports.CampaignRepository {
	args := m.Called()
	return args.Get(0).(ports.CampaignRepository)
}

func (m *MockCampaignUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

type MockCampaignUoWFactory struct{ mock.Mock }

func (m *MockCampaignUoWFactory) Create() commands.CampaignUoW {
	args := m.Called()
	return args.Get(0).(commands.CampaignUoW)
}

func validCreateCampaignCommand(t *testing.T) commands.CreateCampaignCommand {
	t.Helper()
	cmd, err := commands.NewCreateCampaignCommand(kernel.NewUUID(), kernel.NewUUID(),
		"Winter Aid", "winter-aid",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return cmd
}

func TestCreateCampaignCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCampaignCommand(t).WithFlags(false, true, true)

	repo := new(MockCampaignRepository)
	audit := new(MockAuditLog)
	uow := new(MockCampaignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CampaignRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*campaign.Campaign")).Return(nil).Once(),
		uow.On("AuditLog").Return(audit).Once(),
		audit.On("Append", mock.Anything, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCampaignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCampaignCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	added := repo.Calls[0].Arguments.Get(1).(*campaign.Campaign)
	assert.False(t, added.RequireAgreement())
	assert.True(t, added.OperatorCanCreate())
	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCampaignCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateCampaignCommand

	factory := new(MockCampaignUoWFactory)
	h := commands.NewCreateCampaignCommandHandler(factory)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, commands.ErrCreateCampaignCommandIsNotConstructed, err)
}

func TestCreateCampaignCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCampaignCommand(t)

	repo := new(MockCampaignRepository)
	uow := new(MockCampaignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CampaignRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*campaign.Campaign")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCampaignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCampaignCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCampaignCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateCampaignCommand(t)

	repo := new(MockCampaignRepository)
	audit := new(MockAuditLog)
	uow := new(MockCampaignUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CampaignRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*campaign.Campaign")).Return(nil).Once(),
		uow.On("AuditLog").Return(audit).Once(),
		audit.On("Append", mock.Anything, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCampaignUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCampaignCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
