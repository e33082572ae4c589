package jwt

import (
	"errors"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

const (
	Issuer     = "riskgate"
	RoleAdmin  = "admin"
	RoleUser   = "user"
	DefaultTTL = 12 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrForbidden    = errors.New("token lacks the admin role")
	ErrNotUserToken = errors.New("token is not a user token")
)

//go:generate mockery --name=Manager --dir=. --output=mocks/ --filename=jwt_manager_mock.go --case=underscore --with-expecter
type (
	Manager interface {
		CreateToken(subject string, ttl time.Duration) (string, error)
		ValidateToken(tokenString string) (*Claims, error)
		CreateUserToken(userID string, ttl time.Duration) (string, error)
		ValidateUserToken(tokenString string) (*Claims, error)
	}
	manager struct {
		config *config.ServerConfig
	}
)

func NewJwtManager(config *config.ServerConfig) Manager {
	return &manager{
		config: config,
	}
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (m *manager) CreateToken(subject string, ttl time.Duration) (string, error) {
	return m.sign(subject, RoleAdmin, ttl)
}

// CreateUserToken issues the bearer token the proxy accepts as proof of a
// signed-in user. The upstream application signs the same claims with the
// shared secret.
func (m *manager) CreateUserToken(userID string, ttl time.Duration) (string, error) {
	return m.sign(userID, RoleUser, ttl)
}

func (m *manager) sign(subject, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.config.SecretKey))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken checks signature, expiry and the admin role.
func (m *manager) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleAdmin {
		return nil, ErrForbidden
	}
	return claims, nil
}

// ValidateUserToken accepts only user tokens that carry a subject.
func (m *manager) ValidateUserToken(tokenString string) (*Claims, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleUser || claims.Subject == "" {
		return nil, ErrNotUserToken
	}
	return claims, nil
}

func (m *manager) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(m.config.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
