package deliveryrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"gooddelivery/internal/core/domain/model/delivery"
	"gooddelivery/internal/core/domain/model/kernel"
	"gooddelivery/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers to verify database
// persistence behavior.
//
// The connection goes through database/sql with the pq driver, the same way
// production connects, so unique violations surface as real *pq.Error values.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()

	booking := suite.createBooking(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

	suite.tracker.On("TrackAggregate", booking.ID(), booking).Once()

	err := suite.repository.Add(ctx, booking)
	suite.Require().NoError(err)

	suite.assertDeliveryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_ExistingDelivery_RoundTrip() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	pointID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	deliveredAt := time.Date(2026, 4, 12, 10, 30, 0, 0, time.UTC)

	original := suite.restoreDelivered(campaignID, pointID, operatorID, deliveredAt, "SN-0042")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.RecipientID(), retrieved.RecipientID())
	suite.Equal(original.GoodID(), retrieved.GoodID())
	suite.Require().NotNil(retrieved.CampaignID())
	suite.Equal(campaignID, *retrieved.CampaignID())
	suite.Equal("SN-0042", retrieved.ManualIdentifier())
	suite.Equal(delivery.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.DeliveryDate())
	suite.WithinDuration(deliveredAt, *retrieved.DeliveryDate(), time.Second)
	suite.Require().NotNil(retrieved.DeliveredByID())
	suite.Equal(operatorID, *retrieved.DeliveredByID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_WritesAndClearsOptionalColumns() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	pointID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	deliveredAt := time.Date(2026, 4, 12, 10, 30, 0, 0, time.UTC)

	delivered := suite.restoreDelivered(campaignID, pointID, operatorID, deliveredAt, "")
	suite.tracker.On("TrackAggregate", delivered.ID(), delivered).Once()
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	// Rewrite the row with every transition column empty again. Update
	// writes all columns, so the hand-out marks must come back as NULL.
	reverted, err := delivery.RestoreDelivery(
		delivered.ID(), delivered.ChosenPointID(), delivered.RecipientID(), delivered.GoodID(),
		delivered.Quantity(),
		&campaignID, nil,
		"",
		&pointID,
		nil, nil,
		nil, nil, nil,
		nil, nil, nil,
		"rescheduled",
		delivered.CreatedAt(),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", reverted.ID(), reverted).Once()
	suite.Require().NoError(suite.repository.Update(ctx, reverted))

	retrieved, err := suite.repository.Get(ctx, delivered.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Waiting, retrieved.Status())
	suite.Nil(retrieved.DeliveryDate())
	suite.Nil(retrieved.DeliveredByID())
	suite.Equal("rescheduled", retrieved.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistentDelivery_ReturnsError() {
	ctx := context.Background()

	booking := suite.createBooking(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

	err := suite.repository.Update(ctx, booking)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestDelete_ExistingDelivery_RemovesRow() {
	ctx := context.Background()

	booking := suite.createBooking(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.tracker.On("TrackAggregate", booking.ID(), booking).Once()
	suite.Require().NoError(suite.repository.Add(ctx, booking))

	suite.Require().NoError(suite.repository.Delete(ctx, booking.ID()))
	suite.assertDeliveryCount(0)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestDelete_NonExistentDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestCountByGood_CountsAcrossCampaignsAndPoints() {
	ctx := context.Background()

	goodID := kernel.NewUUID()
	otherGoodID := kernel.NewUUID()

	for _, booking := range []*delivery.Delivery{
		suite.createBooking(kernel.NewUUID(), kernel.NewUUID(), goodID),
		suite.createBooking(kernel.NewUUID(), kernel.NewUUID(), goodID),
		suite.createBooking(kernel.NewUUID(), kernel.NewUUID(), otherGoodID),
	} {
		suite.tracker.On("TrackAggregate", booking.ID(), booking).Once()
		suite.Require().NoError(suite.repository.Add(ctx, booking))
	}

	count, err := suite.repository.CountByGood(ctx, goodID)
	suite.Require().NoError(err)
	suite.Equal(2, count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestCountForRecipient_NilPointMatchesUnfixedBookings() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	goodID := kernel.NewUUID()
	pointID := kernel.NewUUID()

	unfixed, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), recipientID, goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(unfixed.ResolveCampaign(campaignID))

	fixed, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), recipientID, goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(fixed.ResolveCampaign(campaignID))
	suite.Require().NoError(fixed.SetDeliveryPoint(pointID))

	for _, booking := range []*delivery.Delivery{unfixed, fixed} {
		suite.tracker.On("TrackAggregate", booking.ID(), booking).Once()
		suite.Require().NoError(suite.repository.Add(ctx, booking))
	}

	count, err := suite.repository.CountForRecipient(ctx, campaignID, recipientID, goodID, nil)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	count, err = suite.repository.CountForRecipient(ctx, campaignID, recipientID, goodID, &pointID)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestHasDisabledForRecipient() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	goodID := kernel.NewUUID()

	active, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), recipientID, goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(active.ResolveCampaign(campaignID))

	suite.tracker.On("TrackAggregate", active.ID(), active).Once()
	suite.Require().NoError(suite.repository.Add(ctx, active))

	has, err := suite.repository.HasDisabledForRecipient(ctx, campaignID, recipientID, goodID)
	suite.Require().NoError(err)
	suite.False(has)

	pointID := kernel.NewUUID()
	operatorID := kernel.NewUUID()
	_, err = active.MarkDelivered(time.Now(), pointID, operatorID)
	suite.Require().NoError(err)
	_, err = active.Disable(time.Now(), pointID, operatorID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", active.ID(), active).Once()
	suite.Require().NoError(suite.repository.Update(ctx, active))

	has, err = suite.repository.HasDisabledForRecipient(ctx, campaignID, recipientID, goodID)
	suite.Require().NoError(err)
	suite.True(has)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestExistsCollision() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	goodID := kernel.NewUUID()
	unitID := kernel.NewUUID()

	existing, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(existing.ResolveCampaign(campaignID))
	suite.Require().NoError(existing.SetStockIdentifier(&unitID))
	existing.SetManualIdentifier("CODE-7")

	suite.tracker.On("TrackAggregate", existing.ID(), existing).Once()
	suite.Require().NoError(suite.repository.Add(ctx, existing))

	suite.Run("same serialized unit collides", func() {
		found, err := suite.repository.ExistsCollision(ctx, goodID, campaignID, &unitID, "", nil)
		suite.Require().NoError(err)
		suite.True(found)
	})

	suite.Run("same manual code collides", func() {
		found, err := suite.repository.ExistsCollision(ctx, goodID, campaignID, nil, "CODE-7", nil)
		suite.Require().NoError(err)
		suite.True(found)
	})

	suite.Run("different identifiers pass", func() {
		otherUnit := kernel.NewUUID()
		found, err := suite.repository.ExistsCollision(ctx, goodID, campaignID, &otherUnit, "CODE-8", nil)
		suite.Require().NoError(err)
		suite.False(found)
	})

	suite.Run("own row is excluded on update", func() {
		ownID := existing.ID()
		found, err := suite.repository.ExistsCollision(ctx, goodID, campaignID, &unitID, "", &ownID)
		suite.Require().NoError(err)
		suite.False(found)
	})

	suite.Run("no identifiers means no collision", func() {
		found, err := suite.repository.ExistsCollision(ctx, goodID, campaignID, nil, "", nil)
		suite.Require().NoError(err)
		suite.False(found)
	})

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_DuplicateSerializedUnit_ReturnsDuplicateError() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	goodID := kernel.NewUUID()
	unitID := kernel.NewUUID()

	first, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(first.ResolveCampaign(campaignID))
	suite.Require().NoError(first.SetStockIdentifier(&unitID))

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(second.ResolveCampaign(campaignID))
	suite.Require().NoError(second.SetStockIdentifier(&unitID))

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var duplicateErr *delivery.DuplicateDeliveryError
	suite.Require().ErrorAs(err, &duplicateErr)
	suite.Equal(goodID.String(), duplicateErr.GoodID)
	suite.Equal(unitID.String(), duplicateErr.Identifier)

	suite.assertDeliveryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByRecipient_ReturnsOldestFirst() {
	ctx := context.Background()

	campaignID := kernel.NewUUID()
	recipientID := kernel.NewUUID()

	older, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), recipientID, kernel.NewUUID(),
		1,
		&campaignID, nil,
		"",
		nil,
		nil, nil,
		nil, nil, nil,
		nil, nil, nil,
		"",
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	newer, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), recipientID, kernel.NewUUID(),
		1,
		&campaignID, nil,
		"",
		nil,
		nil, nil,
		nil, nil, nil,
		nil, nil, nil,
		"",
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	// Insert out of order to make sure ordering comes from created_at.
	for _, booking := range []*delivery.Delivery{newer, older} {
		suite.tracker.On("TrackAggregate", booking.ID(), booking).Once()
		suite.Require().NoError(suite.repository.Add(ctx, booking))
	}

	retrieved, err := suite.repository.GetByRecipient(ctx, campaignID, recipientID)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved, 2)
	suite.Equal(older.ID(), retrieved[0].ID())
	suite.Equal(newer.ID(), retrieved[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// Helper methods

func (suite *DeliveryRepositoryIntegrationTestSuite) createBooking(
	campaignID, recipientID, goodID kernel.UUID,
) *delivery.Delivery {
	booking, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), recipientID, goodID, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(booking.ResolveCampaign(campaignID))
	return booking
}

func (suite *DeliveryRepositoryIntegrationTestSuite) restoreDelivered(
	campaignID, pointID, operatorID kernel.UUID, at time.Time, manualIdentifier string,
) *delivery.Delivery {
	record, err := delivery.RestoreDelivery(
		kernel.NewUUID(), pointID, kernel.NewUUID(), kernel.NewUUID(),
		1,
		&campaignID, nil,
		manualIdentifier,
		&pointID,
		&at, &operatorID,
		nil, nil, nil,
		nil, nil, nil,
		"",
		time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return record
}

func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
