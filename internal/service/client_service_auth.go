package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-custody/internal/adapter"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) LoginOwner(ctx context.Context, secret string) (models.Token, error) {
	if secret == "" {
		return models.Token{}, fmt.Errorf("%w: empty owner secret", ErrInvalidDataProvided)
	}

	token, err := a.adapter.LoginOwner(ctx, models.OwnerLoginRequest{Secret: secret})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrOwnerLoginOnServer, mapAdapterError(err))
	}

	a.logger.Info().Str("role", string(token.Role)).Msg("logged in as owner")
	return token, nil
}
