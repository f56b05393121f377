// AngelaMos | 2026
// repository_test.go

package scheme

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/agrovia/farmconnect/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func schemeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "scheme_code", "scheme_name", "description",
		"max_claim_amount", "eligibility_criteria", "is_active",
		"created_at", "updated_at",
	})
}

func TestSearch(t *testing.T) {
	t.Run("filters on search term with escaped pattern", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`FROM government_schemes`).
			WithArgs("%crop\\_insurance%").
			WillReturnRows(schemeRows())

		_, err := repo.Search(context.Background(), SearchParams{
			Search: "crop_insurance",
		})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("filters on max amount", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`max_claim_amount <= \$1`).
			WithArgs(50000.0).
			WillReturnRows(schemeRows())

		maxAmount := 50000.0
		_, err := repo.Search(context.Background(), SearchParams{
			MaxAmount: &maxAmount,
		})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("no filters returns active schemes", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Now()
		mock.ExpectQuery(`is_active = TRUE`).
			WillReturnRows(schemeRows().
				AddRow("id-1", "PMFBY", "Pradhan Mantri Fasal Bima Yojana",
					nil, 200000.0, nil, true, now, now))

		schemes, err := repo.Search(context.Background(), SearchParams{})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(schemes) != 1 || schemes[0].SchemeCode != "PMFBY" {
			t.Errorf("schemes = %+v", schemes)
		}
	})
}

func TestGetByCode(t *testing.T) {
	t.Run("unknown code is not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`scheme_code = \$1`).
			WithArgs("NOPE").
			WillReturnRows(schemeRows())

		_, err := repo.GetByCode(context.Background(), "NOPE")
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"50%", "50\\%"},
		{"a_b", "a\\_b"},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
