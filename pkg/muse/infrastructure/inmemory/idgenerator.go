package inmemory

import (
	"github.com/google/uuid"

	"kgeyst.com/muse/pkg/muse/domain"
)

type idGenerator struct{}

func NewIDGenerator() domain.IDGenerator {
	return idGenerator{}
}

func (idGenerator) NextID() string {
	return uuid.NewString()
}
