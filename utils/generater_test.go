package utils_test

import (
	"regexp"
	"testing"

	"github.com/meinhoongagan/philosophy-hub/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenerateOTPFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, utils.GenerateOTP())
	}
}

func TestGenerateUUIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := utils.GenerateUUID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}
