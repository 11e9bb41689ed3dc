package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/railmadad/pkg/utils"
)

const refCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TestGenerateReferenceCode_LengthAndCharset verifies the code shape: 8
// characters, all drawn from [A-Z0-9].
func TestGenerateReferenceCode_LengthAndCharset(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := utils.GenerateReferenceCode()
		assert.Len(t, code, utils.ReferenceCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(refCodeCharset, r),
				"code %q contains character %q outside [A-Z0-9]", code, r)
		}
	}
}

// TestGenerateReferenceCode_IndependentPerCall verifies calls do not repeat in
// practice. 36^8 codes make a collision in a small batch astronomically
// unlikely; a duplicate here means the generator is broken.
func TestGenerateReferenceCode_IndependentPerCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := utils.GenerateReferenceCode()
		assert.False(t, seen[code], "duplicate code %q generated", code)
		seen[code] = true
	}
}
