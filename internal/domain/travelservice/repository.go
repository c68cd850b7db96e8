package travelservice

import (
	"context"
	"time"
)

// Filter narrows List results. Zero values mean no constraint.
type Filter struct {
	ServiceType   ServiceType
	Status        Status
	MonthNumber   int
	IssueFrom     *time.Time
	IssueTo       *time.Time
	DepartureFrom *time.Time
	DepartureTo   *time.Time
}

type Repository interface {
	Create(ctx context.Context, s *TravelService) error
	GetByID(ctx context.Context, id uint64) (*TravelService, error)
	List(ctx context.Context, f Filter) ([]TravelService, error)
	Update(ctx context.Context, id uint64, s *TravelService) error
	Delete(ctx context.Context, id uint64) error
	DeleteMany(ctx context.Context, ids []uint64) (int64, error)
}
