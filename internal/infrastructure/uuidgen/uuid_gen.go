package uuidgen

import (
	"github.com/google/uuid"

	"github.com/learnaray/learnaray/internal/domain/contract"
)

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

var _ contract.IUUIDGenerator = (*UUIDGenerator)(nil)

func (g *UUIDGenerator) NewUUID() string {
	return uuid.NewString()
}

func (g *UUIDGenerator) IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
