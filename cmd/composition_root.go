package cmd

import (
	"log/slog"
	"time"

	"parcelcarrier/internal/adapters/out/crypto"
	"parcelcarrier/internal/adapters/out/postgres"
	"parcelcarrier/internal/adapters/out/tokens"
	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/application/usecases/queries"
	"parcelcarrier/internal/core/ports"
	"parcelcarrier/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. All dependency construction
// lives here; the rest of the application receives ready handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     crypto.BcryptHasher
	tokens     *tokens.JWTProvider
	config     Config
}

// NewCompositionRoot creates the composition root. Fails when the token
// provider cannot be constructed, for example with an empty JWT secret.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokenProvider, err := tokens.NewJWTProvider([]byte(config.JWTSecret), config.JWTIssuer, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypto.NewBcryptHasher(0),
		tokens:     tokenProvider,
		config:     config,
	}, nil
}

// TokenProvider returns the JWT provider shared by the HTTP middleware and
// the authentication handler.
func (c *CompositionRoot) TokenProvider() ports.TokenProvider {
	return c.tokens
}

// PasswordHasher returns the bcrypt hasher.
func (c *CompositionRoot) PasswordHasher() ports.PasswordHasher {
	return c.hasher
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(c.accountUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	return commands.NewUpdateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAssignParcelCommandHandler() commands.AssignParcelCommandHandler {
	return commands.NewAssignParcelCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	return commands.NewChangeParcelStatusCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateCreateTransporterCommandHandler() commands.CreateTransporterCommandHandler {
	return commands.NewCreateTransporterCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateTransporterCommandHandler() commands.UpdateTransporterCommandHandler {
	return commands.NewUpdateTransporterCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeactivateTransporterCommandHandler() commands.DeactivateTransporterCommandHandler {
	return commands.NewDeactivateTransporterCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateActivateAccountCommandHandler() commands.ActivateAccountCommandHandler {
	return commands.NewActivateAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleParcelsQueryHandler() queries.GetStaleParcelsQueryHandler {
	return queries.NewGetStaleParcelsQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(threshold time.Duration, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStaleParcelsQueryHandler(), threshold, logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
