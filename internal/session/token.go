package session

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "fitctl"

// Config holds token issuing and verification parameters.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// DefaultConfig returns the mock-auth defaults.
func DefaultConfig() Config {
	return Config{
		Secret:   "fitctl-local-dev-secret",
		TokenTTL: 24 * time.Hour,
	}
}

// LoadConfig reads session configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("FITCTL_SESSION_SECRET"); v != "" {
		cfg.Secret = v
	}
	if v := os.Getenv("FITCTL_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	return cfg
}

// Claims is the payload extracted from a session token.
type Claims struct {
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// ErrInvalidToken wraps parsing and validation failures.
var ErrInvalidToken = errors.New("invalid session token")

func issueToken(userID, email, name string, expires time.Time, cfg Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"name":  name,
		"iss":   issuer,
		"iat":   jwt.NewNumericDate(time.Now()),
		"exp":   jwt.NewNumericDate(expires),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// ParseToken validates a session token and returns its normalized claims.
func ParseToken(token string, cfg Config) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    sub,
		Email:     email,
		Name:      name,
		ExpiresAt: exp.Time,
	}, nil
}
