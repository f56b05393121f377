// AngelaMos | 2026
// reference_test.go

package claim

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReference(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("has the expected shape", func(t *testing.T) {
		ref, err := GenerateReference(now)
		if err != nil {
			t.Fatalf("GenerateReference: %v", err)
		}

		if len(ref) != len("CLM")+8+8 {
			t.Fatalf("len = %d, want 19: %s", len(ref), ref)
		}
		if !strings.HasPrefix(ref, "CLM20260831") {
			t.Errorf("prefix = %s, want CLM20260831", ref[:11])
		}

		for _, c := range ref[11:] {
			if !strings.ContainsRune(referenceAlphabet, c) {
				t.Errorf("suffix character %q outside alphabet", c)
			}
		}
	})

	// Mirrors claim submission: a colliding reference gets exactly one
	// regenerate, so 10k claims must end up with 10k distinct codes.
	t.Run("unique across ten thousand claims", func(t *testing.T) {
		const draws = 10000
		seen := make(map[string]struct{}, draws)
		for i := 0; i < draws; i++ {
			ref, err := GenerateReference(now)
			if err != nil {
				t.Fatalf("GenerateReference: %v", err)
			}
			if _, dup := seen[ref]; dup {
				ref, err = GenerateReference(now)
				if err != nil {
					t.Fatalf("GenerateReference retry: %v", err)
				}
				if _, dup := seen[ref]; dup {
					t.Fatalf("duplicate reference survived a retry after %d draws: %s", i, ref)
				}
			}
			seen[ref] = struct{}{}
		}

		if len(seen) != draws {
			t.Fatalf("distinct references = %d, want %d", len(seen), draws)
		}
	})
}
