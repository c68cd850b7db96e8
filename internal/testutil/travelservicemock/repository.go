package travelservicemock

import (
	"context"

	domain "travel-services-backend/internal/domain/travelservice"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn     func(ctx context.Context, s *domain.TravelService) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.TravelService, error)
	ListFn       func(ctx context.Context, f domain.Filter) ([]domain.TravelService, error)
	UpdateFn     func(ctx context.Context, id uint64, s *domain.TravelService) error
	DeleteFn     func(ctx context.Context, id uint64) error
	DeleteManyFn func(ctx context.Context, ids []uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.TravelService) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.TravelService, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled // or errors.New("not implemented")
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.TravelService, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, id uint64, s *domain.TravelService) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, s)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	if m.DeleteManyFn != nil {
		return m.DeleteManyFn(ctx, ids)
	}
	return 0, nil
}
