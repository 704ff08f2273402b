package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
	"github.com/goodmart/ecommerce-api/internal/pkg/password"
	"github.com/goodmart/ecommerce-api/internal/pkg/token"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration, login, and the admin-only account
// mutations. The signing secret and token TTL are injected at construction.
type AuthService struct {
	repo     ports.UserRepository
	codec    *token.Codec
	throttle LoginThrottle
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, throttle LoginThrottle, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 20 * time.Minute
	}
	return &AuthService{repo: repo, codec: codec, throttle: throttle, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
		IsCustomer:   true,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates the credentials and issues a signed token. Unknown
// username, wrong password, inactive account, and a throttled account are
// all reported as the same ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	if username == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if locked, err := s.throttle.TooManyFailures(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, continuing")
	} else if locked {
		s.log.Warn().Str("username", username).Msg("login rejected: too many failures")
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.authenticate(ctx, username, pass)
	if err != nil {
		if recordErr := s.throttle.RecordFailure(ctx, username); recordErr != nil {
			s.log.Warn().Err(recordErr).Str("username", username).Msg("failed to record login failure")
		}
		return "", nil, err
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
	}

	signed, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("login succeeded")
	return signed, user, nil
}

// authenticate verifies the credentials against the user store. Every
// failure collapses into ErrInvalidCredentials.
func (s *AuthService) authenticate(ctx context.Context, username, pass string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// issueToken builds the claim set from the user and signs it. Tokens are
// self-contained; no session record is persisted.
func (s *AuthService) issueToken(user *domain.User) (string, error) {
	return s.codec.Encode(token.Claims{
		Username:   user.Username,
		UserID:     user.ID,
		IsAdmin:    user.IsAdmin,
		IsSupplier: user.IsSupplier,
		IsCustomer: user.IsCustomer,
	}, s.tokenTTL)
}

// SupplierPermission flips the target between supplier and customer. The
// flip writes both flags in one update, so exactly one of the two is true
// at any observable moment.
func (s *AuthService) SupplierPermission(ctx context.Context, userID int64) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if !user.IsActive {
		return false, domain.ErrUserNotFound
	}

	nowSupplier := !user.IsSupplier
	if err := s.repo.SetSupplierFlags(ctx, userID, nowSupplier, !nowSupplier); err != nil {
		return false, err
	}

	s.log.Info().Int64("user_id", userID).Bool("is_supplier", nowSupplier).Msg("supplier permission flipped")
	return nowSupplier, nil
}

// DeleteUser soft-deletes the target account. Admin accounts cannot be
// deleted. Deleting an already-inactive user is a no-op reported to the
// caller via the returned flag.
func (s *AuthService) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user.IsAdmin {
		return false, domain.ErrForbidden
	}
	if !user.IsActive {
		return true, nil
	}

	if err := s.repo.SetActive(ctx, userID, false); err != nil {
		return false, err
	}

	s.log.Info().Int64("user_id", userID).Msg("user soft-deleted")
	return false, nil
}
