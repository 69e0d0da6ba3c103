package randomgenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/learnaray/learnaray/internal/domain/contract"
)

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)

// GenerateRandomToken returns a hex token of n random bytes.
func (g *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateActivationCode returns a 4-digit code in [1000, 9999].
func (g *RandomGenerator) GenerateActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
