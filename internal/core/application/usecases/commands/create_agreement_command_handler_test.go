package commands_test

import (
	"context"
	"testing"
	"time"

	"gooddelivery/internal/core/application/usecases/commands"
	"gooddelivery/internal/core/domain/model/campaign"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/core/ports"
	"gooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAgreementRepository struct{ mock.Mock }

func (m *MockAgreementRepository) Add(ctx context.Context, agreement *campaign.Agreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockAgreementRepository) Link(ctx context.Context, link *campaign.CampaignAgreement) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockAgreementRepository) GetActiveByCampaign(ctx context.Context, campaignID kernel.UUID) ([]*campaign.Agreement, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*campaign.Agreement), args.Error(1)
}

type MockAgreementUoW struct{ mock.Mock }

func (m *MockAgreementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgreementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgreementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgreementUoW) CampaignRepository() ports.CampaignRepository {
	args := m.Called()
	return args.Get(0).(ports.CampaignRepository)
}

func (m *MockAgreementUoW) AgreementRepository() ports.AgreementRepository {
	args := m.Called()
	return args.Get(0).(ports.AgreementRepository)
}

func (m *MockAgreementUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

type MockAgreementUoWFactory struct{ mock.Mock }

func (m *MockAgreementUoWFactory) Create() commands.AgreementUoW {
	args := m.Called()
	return args.Get(0).(commands.AgreementUoW)
}

type agreementHandlerFixture struct {
	campaigns  *MockCampaignRepository
	agreements *MockAgreementRepository
	audit      *MockAuditLog
	uow        *MockAgreementUoW
	factory    *MockAgreementUoWFactory
}

// newAgreementHandlerFixture wires a unit of work whose repository accessors
// may be called any number of times. Call expectations are set per test on
// the repositories themselves.
func newAgreementHandlerFixture(ctx context.Context) *agreementHandlerFixture {
	f := &agreementHandlerFixture{
		campaigns:  new(MockCampaignRepository),
		agreements: new(MockAgreementRepository),
		audit:      new(MockAuditLog),
		uow:        new(MockAgreementUoW),
		factory:    new(MockAgreementUoWFactory),
	}

	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("Rollback", ctx).Return(nil)
	f.uow.On("CampaignRepository").Return(f.campaigns)
	f.uow.On("AgreementRepository").Return(f.agreements)
	f.uow.On("AuditLog").Return(f.audit)
	f.factory.On("Create").Return(f.uow)

	return f
}

func validCreateAgreementCommand(t *testing.T, campaignID kernel.UUID) commands.CreateAgreementCommand {
	t.Helper()
	cmd, err := commands.NewCreateAgreementCommand(
		kernel.NewUUID(), campaignID, kernel.NewUUID(),
		"Privacy terms", "The recipient accepts the processing of personal data.")
	require.NoError(t, err)
	return cmd
}

func TestCreateAgreementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	campaignID := kernel.NewUUID()
	cmd := validCreateAgreementCommand(t, campaignID)

	f := newAgreementHandlerFixture(ctx)
	camp, err := campaign.NewCampaign(campaignID, "Winter Aid", "winter-aid",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f.campaigns.On("Get", mock.Anything, campaignID).Return(camp, nil).Once()
	f.agreements.On("GetActiveByCampaign", mock.Anything, campaignID).Return([]*campaign.Agreement{}, nil).Once()
	f.agreements.On("Add", mock.Anything, mock.AnythingOfType("*campaign.Agreement")).Return(nil).Once()
	f.agreements.On("Link", mock.Anything, mock.AnythingOfType("*campaign.CampaignAgreement")).Return(nil).Once()
	f.audit.On("Append", mock.Anything, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateAgreementCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	for _, call := range f.agreements.Calls {
		if call.Method == "Link" {
			link := call.Arguments.Get(1).(*campaign.CampaignAgreement)
			assert.Equal(t, campaignID, link.CampaignID())
			assert.Equal(t, cmd.AgreementID(), link.AgreementID())
		}
	}
	f.agreements.AssertExpectations(t)
	f.audit.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestCreateAgreementCommandHandler_Handle_NameTaken(t *testing.T) {
	ctx := t.Context()
	campaignID := kernel.NewUUID()
	cmd := validCreateAgreementCommand(t, campaignID)

	f := newAgreementHandlerFixture(ctx)
	camp, err := campaign.NewCampaign(campaignID, "Winter Aid", "winter-aid",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	existing, err := campaign.NewAgreement(kernel.NewUUID(), "Privacy terms", "Earlier wording.")
	require.NoError(t, err)

	f.campaigns.On("Get", mock.Anything, campaignID).Return(camp, nil).Once()
	f.agreements.On("GetActiveByCampaign", mock.Anything, campaignID).
		Return([]*campaign.Agreement{existing}, nil).Once()

	h := commands.NewCreateAgreementCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAgreementNameTaken)
	f.agreements.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateAgreementCommandHandler_Handle_CampaignNotFound(t *testing.T) {
	ctx := t.Context()
	campaignID := kernel.NewUUID()
	cmd := validCreateAgreementCommand(t, campaignID)

	f := newAgreementHandlerFixture(ctx)
	f.campaigns.On("Get", mock.Anything, campaignID).
		Return(nil, errs.NewObjectNotFoundError("campaign", campaignID.String())).Once()

	h := commands.NewCreateAgreementCommandHandler(f.factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCampaignNotFound)
	f.agreements.AssertNotCalled(t, "GetActiveByCampaign", mock.Anything, mock.Anything)
}

func TestCreateAgreementCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateAgreementCommand

	factory := new(MockAgreementUoWFactory)
	h := commands.NewCreateAgreementCommandHandler(factory)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, commands.ErrCreateAgreementCommandIsNotConstructed, err)
}
