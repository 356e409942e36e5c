package game

import (
	"crypto/rand"
	"math/big"
	"strings"

	"cardparty/backend/internal/models"

	"gorm.io/gorm"
)

// Join codes are short enough to read out loud, so the alphabet drops the
// characters people confuse: 0/O, 1/I/L.
const (
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 4
)

func randomCode() string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			panic(err) // crypto/rand failing means the process is unusable
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String()
}

// generateUniqueCode returns a join code no other active game is using,
// regenerating on collision.
func generateUniqueCode(tx *gorm.DB) string {
	for {
		code := randomCode()
		var count int64
		tx.Model(&models.Game{}).
			Where("code = ? AND ended = ?", code, false).
			Count(&count)
		if count == 0 {
			return code
		}
	}
}

// normalizeCode maps user input onto the canonical code form.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
