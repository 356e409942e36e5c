package jwt

import (
	"cardparty/backend/internal/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a new JWT for a given player ID. Tokens are minted
// when a player creates or joins a game and cover the lifetime of a session.
func GenerateToken(playerID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": playerID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
