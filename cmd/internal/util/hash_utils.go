package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GetSHA256Hash вычисляет хеш SHA-256 для входной строки.
func GetSHA256Hash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// Fingerprint вычисляет стабильный отпечаток набора строк.
// Порядок частей важен: одинаковые наборы в разном порядке дают разные отпечатки.
func Fingerprint(parts ...string) string {
	return GetSHA256Hash(strings.Join(parts, "\x1f"))
}
