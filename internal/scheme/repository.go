// AngelaMos | 2026
// repository.go

package scheme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/agrovia/farmconnect/internal/core"
)

type SearchParams struct {
	Search    string
	MaxAmount *float64
}

type Repository interface {
	Search(ctx context.Context, params SearchParams) ([]Scheme, error)
	GetByCode(ctx context.Context, code string) (*Scheme, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const schemeColumns = `
	id, scheme_code, scheme_name, description, max_claim_amount,
	eligibility_criteria, is_active, created_at, updated_at`

func (r *repository) Search(
	ctx context.Context,
	params SearchParams,
) ([]Scheme, error) {
	conditions := []string{"is_active = TRUE"}
	var args []any
	argIdx := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(scheme_name ILIKE $%d OR description ILIKE $%d)",
			argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.MaxAmount != nil {
		conditions = append(conditions, fmt.Sprintf(
			"max_claim_amount <= $%d", argIdx))
		args = append(args, *params.MaxAmount)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM government_schemes
		WHERE %s
		ORDER BY max_claim_amount DESC NULLS LAST`,
		schemeColumns, strings.Join(conditions, " AND "))

	schemes := []Scheme{}
	if err := r.db.SelectContext(ctx, &schemes, query, args...); err != nil {
		return nil, fmt.Errorf("search schemes: %w", err)
	}

	return schemes, nil
}

func (r *repository) GetByCode(
	ctx context.Context,
	code string,
) (*Scheme, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM government_schemes
		WHERE scheme_code = $1 AND is_active = TRUE`, schemeColumns)

	var scheme Scheme
	err := r.db.GetContext(ctx, &scheme, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scheme: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scheme: %w", err)
	}

	return &scheme, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
