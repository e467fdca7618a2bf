package identity

import (
	"github.com/google/uuid"

	"video-metadata-service/internal/core/ports"
)

type uuidGenerator struct{}

func NewUUIDGenerator() ports.IDGenerator {
	return &uuidGenerator{}
}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}
