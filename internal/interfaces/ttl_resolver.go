package interfaces

import "go-pray-cache/internal/models"

//go:generate mockgen -package=mock -source=ttl_resolver.go -destination=mock/ttl_resolver.go

// TTLResolver maps a named policy to the TTL currently configured for it
type TTLResolver interface {
	TTL(policy models.Policy) models.TTL
}
