package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	prefixBytes = 4
	secretBytes = 16
)

// GenerateKey creates a new API key of the form prefix.secret. The 8
// character prefix is stored in clear for lookup; callers keep only a hash
// of the full key.
func GenerateKey() (prefix, key string, err error) {
	buf := make([]byte, prefixBytes+secretBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	prefix = hex.EncodeToString(buf[:prefixBytes])
	key = fmt.Sprintf("%s.%s", prefix, hex.EncodeToString(buf[prefixBytes:]))
	return prefix, key, nil
}
