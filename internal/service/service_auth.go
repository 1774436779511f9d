package service

import (
	"context"
	"crypto/hmac"
	"fmt"
	"time"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

// authService is the concrete implementation of AuthService.
// It exchanges the configured owner secret for a signed JWT carrying the
// owner role.
type authService struct {
	// ownerSecretHash is the HMAC of the owner secret keyed with
	// tokenSignKey. The plain secret is not kept.
	ownerSecretHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		ownerSecretHash: utils.HashString(cfg.OwnerSecret, cfg.TokenSignKey),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// LoginOwner issues an owner token when req.Secret matches the configured
// owner secret.
//
// Returns:
//   - ErrInvalidDataProvided if the secret is empty.
//   - ErrWrongOwnerSecret if it does not match.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) LoginOwner(ctx context.Context, req models.OwnerLoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Secret == "" {
		log.Error().Msg("empty owner secret provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	given := utils.HashString(req.Secret, a.tokenSignKey)
	if !hmac.Equal([]byte(given), []byte(a.ownerSecretHash)) {
		log.Warn().Msg("wrong owner secret")
		return models.Token{}, ErrWrongOwnerSecret
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, models.RoleOwner, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
