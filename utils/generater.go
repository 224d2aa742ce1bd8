package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateOTP returns a 6-digit numeric code, zero-padded.
func GenerateOTP() string {
	b := make([]byte, 6)
	rand.Read(b)
	code := make([]byte, 6)
	for i := range b {
		code[i] = '0' + (b[i] % 10)
	}
	return string(code)
}

// GenerateUUID returns a random identifier for uploaded assets.
func GenerateUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
