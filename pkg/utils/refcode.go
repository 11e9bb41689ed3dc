package utils

import (
	"crypto/rand"
	"log"
)

// referenceCodeAlphabet is uppercase letters plus digits, 36 symbols. With 8
// positions that is 36^8 possible codes; uniqueness is still enforced by the
// unique index on complaints.reference_code, not assumed here.
const referenceCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferenceCodeLength is the fixed length of a rider-facing reference code.
const ReferenceCodeLength = 8

// GenerateReferenceCode produces an 8-character code drawn uniformly from
// [A-Z0-9]. The code is the rider's public handle for a complaint and is
// deliberately decoupled from the internal row id.
func GenerateReferenceCode() string {
	// Bytes >= 252 are rejected so that the modulo stays uniform over the
	// 36-symbol alphabet (252 = 7 * 36).
	const rejectAbove = 252

	code := make([]byte, 0, ReferenceCodeLength)
	buf := make([]byte, ReferenceCodeLength)
	for len(code) < ReferenceCodeLength {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand failing means the OS entropy source is broken.
			log.Fatalf("Failed to read random bytes for reference code: %v", err)
		}
		for _, b := range buf {
			if b >= rejectAbove {
				continue
			}
			code = append(code, referenceCodeAlphabet[int(b)%len(referenceCodeAlphabet)])
			if len(code) == ReferenceCodeLength {
				break
			}
		}
	}
	return string(code)
}
