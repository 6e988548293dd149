package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parcelcarrier/internal/adapters/out/postgres"
	"parcelcarrier/internal/adapters/out/postgres/accountrepo"
	"parcelcarrier/internal/adapters/out/postgres/parcelrepo"
	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/core/domain/services"
	"parcelcarrier/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// funcUoWFactory adapts the ports factory to the commands factory interface.
type funcUoWFactory func() ports.UnitOfWork

func (f funcUoWFactory) Create() commands.UoW {
	return f()
}

// UnitOfWorkIntegrationTestSuite exercises transactional behavior across
// both repositories against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &accountrepo.AccountDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels, accounts").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedTransporter(login string) *account.Account {
	ctx := context.Background()
	transporter, err := account.NewTransporter(kernel.NewUUID(), login, "$2a$10$hash", account.SpecialtyStandard)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AccountRepository().Add(ctx, transporter))
	suite.Require().NoError(uow.Commit(ctx))
	return transporter
}

func (suite *UnitOfWorkIntegrationTestSuite) seedPendingParcel() *parcel.Parcel {
	ctx := context.Background()
	p, err := parcel.NewParcel(kernel.NewUUID(), parcel.TypeStandard, 10, "742 Evergreen Terrace, Springfield", "", nil, nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsBothWrites() {
	ctx := context.Background()
	transporter := suite.seedTransporter("driver_1")
	p := suite.seedPendingParcel()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(p.Assign(transporter.ID()))
	transporter.SetOnDelivery()
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, p))
	suite.Require().NoError(uow.AccountRepository().Update(ctx, transporter))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	restoredParcel, err := fresh.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	restoredAccount, err := fresh.AccountRepository().Get(ctx, transporter.ID())
	suite.Require().NoError(err)

	suite.Equal(parcel.StatusPending, restoredParcel.Status())
	suite.True(restoredAccount.IsAvailable())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssignmentsToOneTransporter() {
	ctx := context.Background()
	transporter := suite.seedTransporter("driver_1")

	const attempts = 8
	parcels := make([]*parcel.Parcel, attempts)
	for i := range parcels {
		parcels[i] = suite.seedPendingParcel()
	}

	handler := commands.NewAssignParcelCommandHandler(funcUoWFactory(func() ports.UnitOfWork {
		return suite.factory.Create()
	}))

	var wg sync.WaitGroup
	errorsCh := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(p *parcel.Parcel) {
			defer wg.Done()
			cmd, err := commands.NewAssignParcelCommand(p.ID(), transporter.ID())
			if err != nil {
				errorsCh <- err
				return
			}
			errorsCh <- handler.Handle(ctx, cmd)
		}(parcels[i])
	}
	wg.Wait()
	close(errorsCh)

	succeeded := 0
	for err := range errorsCh {
		if err == nil {
			succeeded++
			continue
		}
		var unavailable *services.TransporterUnavailableError
		suite.Require().True(
			errors.Is(err, ports.ErrAvailabilityConflict) || errors.As(err, &unavailable),
			"unexpected error: %v", err,
		)
	}
	// Exactly one assignment wins the transporter.
	suite.Equal(1, succeeded)

	fresh := suite.factory.Create()
	restored, err := fresh.AccountRepository().Get(ctx, transporter.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsOnDelivery())

	inTransit := 0
	for _, p := range parcels {
		restoredParcel, err := fresh.ParcelRepository().Get(ctx, p.ID())
		suite.Require().NoError(err)
		if restoredParcel.Status() == parcel.StatusInTransit {
			inTransit++
		}
	}
	suite.Equal(1, inTransit)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
