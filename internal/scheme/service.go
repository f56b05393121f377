// AngelaMos | 2026
// service.go

package scheme

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(
	ctx context.Context,
	params SearchParams,
) ([]Scheme, error) {
	return s.repo.Search(ctx, params)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Scheme, error) {
	return s.repo.GetByCode(ctx, code)
}
