package registry

import (
	"context"

	"github.com/MKhiriev/go-custody/internal/vault"
	"github.com/MKhiriev/go-custody/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_mock.go -package=mock

// Registry creates resources and mints new units of them. The component
// depends only on this interface; the host decides which implementation
// backs it.
type Registry interface {
	// CreateResource registers a new resource and returns its identity
	// together with a bucket holding the initial supply.
	CreateResource(ctx context.Context, spec models.ResourceSpec) (models.ResourceIdentity, *vault.Bucket, error)

	// Mint creates new units of an existing resource.
	Mint(ctx context.Context, address models.ResourceAddress, req models.MintRequest) (*vault.Bucket, error)
}
