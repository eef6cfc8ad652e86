package interfaces

import "go-pray-cache/internal/models"

//go:generate mockgen -package=mock -source=keybuilder.go -destination=mock/keybuilder.go

// KeyBuilder canonizes a prefix and identifier parts into a deterministic cache key
type KeyBuilder interface {
	Build(prefix models.Prefix, parts ...string) (string, error)
}
