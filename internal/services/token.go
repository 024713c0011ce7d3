package services

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/rideon-ev/compatquiz/internal/utils"
)

// ResultsClaims is the shareable summary of a completed quiz run.
type ResultsClaims struct {
	Name    string `json:"name,omitempty"`
	ModelID string `json:"model_id"`
	Score   int    `json:"score"`
	jwt.RegisteredClaims
}

func tokenSecret() []byte {
	return []byte(utils.SafeEnv("QUIZ_TOKEN_SECRET", "compatquiz-dev-secret"))
}

// SignResultsToken mints an expiring share token for a quiz result.
func SignResultsToken(name, modelID string, score int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ResultsClaims{
		Name:    name,
		ModelID: modelID,
		Score:   score,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret())
}

// ParseResultsToken verifies a share token and returns its claims.
func ParseResultsToken(tok string) (*ResultsClaims, error) {
	t, err := jwt.ParseWithClaims(tok, &ResultsClaims{}, func(token *jwt.Token) (interface{}, error) {
		return tokenSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*ResultsClaims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
