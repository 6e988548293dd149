package commands_test

import (
	"context"

	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateWithAvailabilityCheck(ctx context.Context, a *account.Account, expected account.Availability) error {
	args := m.Called(ctx, a, expected)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByLogin(ctx context.Context, login string) (*account.Account, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct {
	mock.Mock
	parcelRepo  *MockParcelRepository
	accountRepo *MockAccountRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.parcelRepo
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	return m.accountRepo
}

// newMockUoW wires a unit of work that expects the usual begin/rollback pair.
// Commit expectations are added per test.
func newMockUoW() *MockUoW {
	uow := &MockUoW{
		parcelRepo:  &MockParcelRepository{},
		accountRepo: &MockAccountRepository{},
	}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

type MockUoWFactory struct{ uow *MockUoW }

func (f *MockUoWFactory) Create() commands.UoW { return f.uow }

type MockParcelUoWFactory struct{ uow *MockUoW }

func (f *MockParcelUoWFactory) Create() commands.ParcelUoW { return f.uow }

type MockAccountUoWFactory struct{ uow *MockUoW }

func (f *MockAccountUoWFactory) Create() commands.AccountUoW { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockTokenProvider struct{ mock.Mock }

func (m *MockTokenProvider) Issue(claims ports.AuthClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenProvider) Verify(token string) (ports.AuthClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.AuthClaims), args.Error(1)
}
