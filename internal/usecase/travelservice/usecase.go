package travelservice

import (
	"context"
	"errors"
	"strings"

	"travel-services-backend/internal/domain/travelservice"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Usecase struct{ repo travelservice.Repository }

func NewUsecase(r travelservice.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in Input) (*ServiceDTO, error) {
	s, err := sanitize(in)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ServiceDTO, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, travelservice.ErrNotFound
		}
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]ServiceDTO, error) {
	f := travelservice.Filter{
		ServiceType:   travelservice.ServiceType(strings.TrimSpace(q.ServiceType)),
		Status:        travelservice.Status(strings.TrimSpace(q.Status)),
		MonthNumber:   q.MonthNumber,
		IssueFrom:     q.IssueFrom,
		IssueTo:       q.IssueTo,
		DepartureFrom: q.DepartureFrom,
		DepartureTo:   q.DepartureTo,
	}
	rows, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// Update replaces every mutable field of the record; the id and creation
// timestamp always survive.
func (u *Usecase) Update(ctx context.Context, id uint64, in Input) (*ServiceDTO, error) {
	s, err := sanitize(in)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, id, s); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, travelservice.ErrNotFound
		}
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return travelservice.ErrNotFound
	}
	return err
}

// DeleteMany removes every listed id and reports how many rows went away.
// Unknown ids are skipped, the bulk path never returns ErrNotFound.
func (u *Usecase) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	return u.repo.DeleteMany(ctx, ids)
}

// sanitize turns raw form input into a persistable record: text fields are
// trimmed, costs rounded to two decimals, total recomputed, and the month
// pair resolved from the number first, the name second, the issue date last.
// A mismatched pair is corrected here rather than rejected.
func sanitize(in Input) (*travelservice.TravelService, error) {
	monthNum := in.MonthNumber
	monthName, ok := travelservice.MonthName(monthNum)
	if !ok {
		if n, found := travelservice.MonthNumber(strings.TrimSpace(in.MonthName)); found {
			monthNum = n
			monthName, _ = travelservice.MonthName(n)
		} else if !in.IssueDate.IsZero() {
			monthNum = int(in.IssueDate.Month())
			monthName, _ = travelservice.MonthName(monthNum)
		}
	}

	cost := travelservice.Round2(in.ServiceCost)
	fee := travelservice.Round2(in.Fee)

	s := &travelservice.TravelService{
		ServiceType:   travelservice.ServiceType(strings.TrimSpace(in.ServiceType)),
		Control:       strings.TrimSpace(in.Control),
		IssueDate:     in.IssueDate,
		Issuer:        strings.TrimSpace(in.Issuer),
		Airline:       strings.TrimSpace(in.Airline),
		DepartureDate: in.DepartureDate,
		MonthNumber:   monthNum,
		MonthName:     monthName,
		Origin:        strings.TrimSpace(in.Origin),
		Destination:   strings.TrimSpace(in.Destination),
		UserName:      strings.TrimSpace(in.UserName),
		Reason:        strings.TrimSpace(in.Reason),
		CostCenter:    strings.TrimSpace(in.CostCenter),
		ServiceCost:   cost,
		Fee:           fee,
		TotalCost:     travelservice.Round2(cost + fee),
		Status:        travelservice.Status(strings.TrimSpace(in.Status)),
		Supplier:      strings.TrimSpace(in.Supplier),
		InvoiceIssued: in.InvoiceIssued,
	}

	// Invoice details only persist while the invoice is marked issued;
	// unchecking it clears stale number and date.
	if in.InvoiceIssued {
		s.InvoiceNumber = strings.TrimSpace(in.InvoiceNumber)
		if in.InvoiceIssueDate != nil {
			d := *in.InvoiceIssueDate
			s.InvoiceIssueDate = &d
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func toDTO(s *travelservice.TravelService) *ServiceDTO {
	d := &ServiceDTO{
		ID:            s.ID,
		ServiceType:   string(s.ServiceType),
		Control:       s.Control,
		IssueDate:     s.IssueDate.Format(dateLayout),
		Issuer:        s.Issuer,
		Airline:       s.Airline,
		DepartureDate: s.DepartureDate.Format(dateLayout),
		MonthNumber:   s.MonthNumber,
		MonthName:     s.MonthName,
		Origin:        s.Origin,
		Destination:   s.Destination,
		UserName:      s.UserName,
		Reason:        s.Reason,
		CostCenter:    s.CostCenter,
		ServiceCost:   s.ServiceCost,
		Fee:           s.Fee,
		TotalCost:     s.TotalCost,
		Status:        string(s.Status),
		Supplier:      s.Supplier,
		InvoiceIssued: s.InvoiceIssued,
		InvoiceNumber: s.InvoiceNumber,
		CreatedAt:     s.CreatedAt,
	}
	if s.InvoiceIssueDate != nil {
		d.InvoiceIssueDate = s.InvoiceIssueDate.Format(dateLayout)
	}
	return d
}
