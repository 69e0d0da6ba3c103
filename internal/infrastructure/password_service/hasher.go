package passwordservice

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/learnaray/learnaray/internal/domain/contract"
)

type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

var _ contract.IHasher = (*Hasher)(nil)

// HashPassword hashes a plaintext password using bcrypt.
func (h *Hasher) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePasswordHash compares a plaintext password with its hashed version.
func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
