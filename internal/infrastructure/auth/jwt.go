package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalido = errors.New("token inválido")
)

// Claims carries the authenticated usuario and its scopes.
type Claims struct {
	UsuarioID string   `json:"usuario_id"`
	Nome      string   `json:"nome"`
	Documento string   `json:"documento,omitempty"`
	Scopes    []string `json:"scopes"`
	jwt.RegisteredClaims
}

var (
	secretKey = []byte(getEnv("JWT_SECRET", "loteamentos-dev-secret"))

	tokenExpiration = 12 * time.Hour
)

// GenerateToken issues an HS256 token for a usuario.
func GenerateToken(usuarioID, nome, documento string, scopes []string) (string, error) {
	now := time.Now()

	claims := Claims{
		UsuarioID: usuarioID,
		Nome:      nome,
		Documento: documento,
		Scopes:    scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken validates a JWT token and returns its claims.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalido
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
