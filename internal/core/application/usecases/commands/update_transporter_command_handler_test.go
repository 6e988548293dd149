package commands_test

import (
	"context"
	"testing"

	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateTransporterCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep stored password when none supplied", func(t *testing.T) {
		transporter := newTransporter(t, account.SpecialtyStandard)

		uow := newMockUoW()
		uow.On("Commit", mock.Anything).Return(nil)
		uow.accountRepo.On("Get", mock.Anything, transporter.ID()).Return(transporter, nil)
		uow.accountRepo.On("Update", mock.Anything, transporter).Return(nil)

		hasher := &MockPasswordHasher{}

		handler := commands.NewUpdateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, hasher)
		cmd, err := commands.NewUpdateTransporterCommand(transporter.ID(), transporter.Login(), "", account.SpecialtyFragile)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, "$2a$10$hash", transporter.PasswordHash())
		assert.Equal(t, account.SpecialtyFragile, transporter.Specialty())
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("should rehash when a new password is supplied", func(t *testing.T) {
		transporter := newTransporter(t, account.SpecialtyStandard)

		uow := newMockUoW()
		uow.On("Commit", mock.Anything).Return(nil)
		uow.accountRepo.On("Get", mock.Anything, transporter.ID()).Return(transporter, nil)
		uow.accountRepo.On("Update", mock.Anything, transporter).Return(nil)

		hasher := &MockPasswordHasher{}
		hasher.On("Hash", "newsecret").Return("$2a$10$new", nil)

		handler := commands.NewUpdateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, hasher)
		cmd, err := commands.NewUpdateTransporterCommand(transporter.ID(), transporter.Login(), "newsecret", transporter.Specialty())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, "$2a$10$new", transporter.PasswordHash())
	})

	t.Run("should check uniqueness only when login changes", func(t *testing.T) {
		transporter := newTransporter(t, account.SpecialtyStandard)

		uow := newMockUoW()
		uow.accountRepo.On("Get", mock.Anything, transporter.ID()).Return(transporter, nil)
		uow.accountRepo.On("ExistsByLogin", mock.Anything, "driver_2").Return(true, nil)

		handler := commands.NewUpdateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, &MockPasswordHasher{})
		cmd, err := commands.NewUpdateTransporterCommand(transporter.ID(), "driver_2", "", transporter.Specialty())
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrLoginAlreadyTaken)
		assert.Equal(t, "driver_1", transporter.Login())
	})

	t.Run("should rename when the new login is free", func(t *testing.T) {
		transporter := newTransporter(t, account.SpecialtyStandard)

		uow := newMockUoW()
		uow.On("Commit", mock.Anything).Return(nil)
		uow.accountRepo.On("Get", mock.Anything, transporter.ID()).Return(transporter, nil)
		uow.accountRepo.On("ExistsByLogin", mock.Anything, "driver_2").Return(false, nil)
		uow.accountRepo.On("Update", mock.Anything, transporter).Return(nil)

		handler := commands.NewUpdateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, &MockPasswordHasher{})
		cmd, err := commands.NewUpdateTransporterCommand(transporter.ID(), "driver_2", "", transporter.Specialty())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, "driver_2", transporter.Login())
	})

	t.Run("should reject an account that is not a transporter", func(t *testing.T) {
		admin, err := account.NewAdmin(kernel.NewUUID(), "admin", "$2a$10$hash")
		require.NoError(t, err)

		uow := newMockUoW()
		uow.accountRepo.On("Get", mock.Anything, admin.ID()).Return(admin, nil)

		handler := commands.NewUpdateTransporterCommandHandler(&MockAccountUoWFactory{uow: uow}, &MockPasswordHasher{})
		cmd, err := commands.NewUpdateTransporterCommand(admin.ID(), "admin", "", account.SpecialtyStandard)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		var notTransporter *services.NotTransporterError
		require.ErrorAs(t, err, &notTransporter)
		assert.Equal(t, account.RoleAdmin, notTransporter.Role)
		uow.accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
