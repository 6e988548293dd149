package cmd

import (
	"context"
	"fmt"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
)

// SeedDefaultAdmin creates the default admin account when no account with the
// configured login exists yet. Safe to run on every start.
func (c *CompositionRoot) SeedDefaultAdmin(ctx context.Context) error {
	uow := c.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.AccountRepository()

	exists, err := repo.ExistsByLogin(ctx, c.config.DefaultAdminLogin)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := c.hasher.Hash(c.config.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin, err := account.NewAdmin(kernel.NewUUID(), c.config.DefaultAdminLogin, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to construct default admin: %w", err)
	}

	if err := repo.Add(ctx, admin); err != nil {
		return fmt.Errorf("failed to persist default admin: %w", err)
	}

	return uow.Commit(ctx)
}
