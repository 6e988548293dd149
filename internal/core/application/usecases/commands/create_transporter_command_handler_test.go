package commands_test

import (
	"context"
	"testing"

	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransporterCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should create active available transporter with hashed password", func(t *testing.T) {
		id := kernel.NewUUID()

		uow := newMockUoW()
		uow.On("Commit", mock.Anything).Return(nil)
		uow.accountRepo.On("ExistsByLogin", mock.Anything, "driver_1").Return(false, nil)
		uow.accountRepo.On("Add", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
			return a.Login() == "driver_1" &&
				a.PasswordHash() == "$2a$10$digest" &&
				a.IsTransporter() &&
				a.IsActive() &&
				a.IsAvailable() &&
				a.Specialty() == account.SpecialtyRefrigerated
		})).Return(nil)

		hasher := &MockPasswordHasher{}
		hasher.On("Hash", "secret1").Return("$2a$10$digest", nil)

		handler := commands.NewCreateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, hasher)
		cmd, err := commands.NewCreateTransporterCommand(id, "driver_1", "secret1", account.SpecialtyRefrigerated)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))
		uow.accountRepo.AssertExpectations(t)
	})

	t.Run("should fail when login is taken", func(t *testing.T) {
		uow := newMockUoW()
		uow.accountRepo.On("ExistsByLogin", mock.Anything, "driver_1").Return(true, nil)

		hasher := &MockPasswordHasher{}
		hasher.On("Hash", "secret1").Return("$2a$10$digest", nil)

		handler := commands.NewCreateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, hasher)
		cmd, err := commands.NewCreateTransporterCommand(kernel.NewUUID(), "driver_1", "secret1", account.SpecialtyStandard)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrLoginAlreadyTaken)
		uow.accountRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("password length is validated at command construction", func(t *testing.T) {
		_, err := commands.NewCreateTransporterCommand(kernel.NewUUID(), "driver_1", "abcd", account.SpecialtyStandard)
		require.Error(t, err)

		_, err = commands.NewCreateTransporterCommand(kernel.NewUUID(), "driver_1", "abcdefghijklmnopqrstu", account.SpecialtyStandard)
		require.Error(t, err)
	})

	t.Run("invalid login surfaces from the aggregate", func(t *testing.T) {
		uow := newMockUoW()
		hasher := &MockPasswordHasher{}
		hasher.On("Hash", "secret1").Return("$2a$10$digest", nil)

		handler := commands.NewCreateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, hasher)
		cmd, err := commands.NewCreateTransporterCommand(kernel.NewUUID(), "no spaces allowed", "secret1", account.SpecialtyStandard)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "login")
	})
}
