// AngelaMos | 2026
// reference.go

package claim

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const referenceAlphabet = "0123456789ABCDEF"

// GenerateReference builds a claim reference of the form
// CLM20260831A1B2C3D4: a fixed prefix, the submission date, and eight
// random uppercase hex characters. The unique index on the column is
// the real collision guard; callers retry once on a duplicate.
func GenerateReference(now time.Time) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reference: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("CLM")
	sb.WriteString(now.Format("20060102"))
	for _, b := range buf {
		sb.WriteByte(referenceAlphabet[int(b)%len(referenceAlphabet)])
	}

	return sb.String(), nil
}
