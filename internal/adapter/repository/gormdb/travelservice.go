package gormdb

import (
	"context"

	domain "travel-services-backend/internal/domain/travelservice"

	"gorm.io/gorm"
)

type TravelServiceRepository struct{ db *gorm.DB }

func NewTravelServiceRepository(db *gorm.DB) *TravelServiceRepository {
	return &TravelServiceRepository{db: db}
}

func (r *TravelServiceRepository) Create(ctx context.Context, s *domain.TravelService) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *TravelServiceRepository) GetByID(ctx context.Context, id uint64) (*domain.TravelService, error) {
	var out domain.TravelService
	res := r.db.WithContext(ctx).First(&out, "id = ?", id)
	return &out, res.Error
}

func (r *TravelServiceRepository) List(ctx context.Context, f domain.Filter) ([]domain.TravelService, error) {
	q := r.db.WithContext(ctx).Model(&domain.TravelService{})
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MonthNumber != 0 {
		q = q.Where("month_number = ?", f.MonthNumber)
	}
	if f.IssueFrom != nil {
		q = q.Where("issue_date >= ?", *f.IssueFrom)
	}
	if f.IssueTo != nil {
		q = q.Where("issue_date <= ?", *f.IssueTo)
	}
	if f.DepartureFrom != nil {
		q = q.Where("departure_date >= ?", *f.DepartureFrom)
	}
	if f.DepartureTo != nil {
		q = q.Where("departure_date <= ?", *f.DepartureTo)
	}

	var out []domain.TravelService
	res := q.Order("issue_date DESC, id DESC").Find(&out)
	return out, res.Error
}

// Update replaces every mutable column of the row with id. The current row is
// loaded first inside a transaction so a missing id surfaces as
// gorm.ErrRecordNotFound instead of an insert.
func (r *TravelServiceRepository) Update(ctx context.Context, id uint64, s *domain.TravelService) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur domain.TravelService
		if err := tx.First(&cur, "id = ?", id).Error; err != nil {
			return err
		}
		s.ID = cur.ID
		s.CreatedAt = cur.CreatedAt
		return tx.Save(s).Error
	})
}

func (r *TravelServiceRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&domain.TravelService{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TravelServiceRepository) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&domain.TravelService{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}
