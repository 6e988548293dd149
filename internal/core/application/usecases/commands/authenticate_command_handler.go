package commands

import (
	"context"
	"errors"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/ports"
	"parcelcarrier/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials is returned for both an unknown login and a wrong
	// password, so a caller cannot probe which logins exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDeactivated is returned when the credentials are correct but
	// the account has been soft deleted.
	ErrAccountDeactivated = errors.New("account is deactivated")
)

// AuthenticateResult carries the session token and the authenticated identity.
type AuthenticateResult struct {
	Token     string
	AccountID kernel.UUID
	Login     string
	Role      account.Role
}

// AuthenticateCommandHandler verifies credentials and issues session tokens.
// Unknown logins and wrong passwords share a single error value, so the
// handler never reveals which one occurred.
type AuthenticateCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenProvider
}

// NewAuthenticateCommandHandler creates a handler for authentication.
func NewAuthenticateCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenProvider,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the login attempt.
// Returns ErrInvalidCredentials for unknown logins and wrong passwords alike.
// A deactivated account is rejected with ErrAccountDeactivated before the
// password is checked.
func (h AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (AuthenticateResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthenticateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthenticateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.AccountRepository().GetByLogin(ctx, cmd.Login())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticateResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateResult{}, err
	}

	if !aggregate.IsActive() {
		return AuthenticateResult{}, ErrAccountDeactivated
	}

	if !h.hasher.Verify(aggregate.PasswordHash(), cmd.Password()) {
		return AuthenticateResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(ports.AuthClaims{
		AccountID: aggregate.ID(),
		Login:     aggregate.Login(),
		Role:      aggregate.Role(),
	})
	if err != nil {
		return AuthenticateResult{}, err
	}

	return AuthenticateResult{
		Token:     token,
		AccountID: aggregate.ID(),
		Login:     aggregate.Login(),
		Role:      aggregate.Role(),
	}, nil
}
