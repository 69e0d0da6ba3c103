package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/usecase"
)

var errInvalidToken = errors.New("invalid token")

// Manager signs and parses the three token kinds. Each kind has its own
// secret so a token can never be replayed in another role.
type Manager struct {
	activationSecret []byte
	accessSecret     []byte
	refreshSecret    []byte

	activationTTL time.Duration
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewManager(activationSecret, accessSecret, refreshSecret string, activationTTL, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		activationSecret: []byte(activationSecret),
		accessSecret:     []byte(accessSecret),
		refreshSecret:    []byte(refreshSecret),
		activationTTL:    activationTTL,
		accessTTL:        accessTTL,
		refreshTTL:       refreshTTL,
	}
}

var _ usecase.TokenService = (*Manager)(nil)

// activationClaims embeds the unpersisted signup data alongside the code the
// user must echo back. Nothing is written to the store until activation.
type activationClaims struct {
	User entity.PendingUser `json:"user"`
	Code string             `json:"activation_code"`
	jwt.RegisteredClaims
}

type sessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func (m *Manager) GenerateActivationToken(pending entity.PendingUser, code string) (string, error) {
	claims := activationClaims{
		User: pending,
		Code: code,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.activationTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.activationSecret)
}

func (m *Manager) ParseActivationToken(tokenStr string) (*entity.PendingUser, string, error) {
	var claims activationClaims
	if err := m.parse(tokenStr, &claims, m.activationSecret); err != nil {
		return nil, "", err
	}
	return &claims.User, claims.Code, nil
}

func (m *Manager) GenerateAccessToken(userID string) (string, error) {
	return m.signSession(userID, m.accessTTL, m.accessSecret)
}

func (m *Manager) GenerateRefreshToken(userID string) (string, error) {
	return m.signSession(userID, m.refreshTTL, m.refreshSecret)
}

func (m *Manager) ParseAccessToken(tokenStr string) (string, error) {
	var claims sessionClaims
	if err := m.parse(tokenStr, &claims, m.accessSecret); err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (m *Manager) ParseRefreshToken(tokenStr string) (string, error) {
	var claims sessionClaims
	if err := m.parse(tokenStr, &claims, m.refreshSecret); err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (m *Manager) signSession(userID string, ttl time.Duration, secret []byte) (string, error) {
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (m *Manager) parse(tokenStr string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errInvalidToken
	}
	return nil
}
