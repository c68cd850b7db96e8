package travelservicemock

import (
	"context"
	"errors"
	"testing"

	domain "travel-services-backend/internal/domain/travelservice"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	s := &domain.TravelService{Control: "CTRL-1"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.TravelService) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != s {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, s); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, s); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	want := &domain.TravelService{ID: 2}

	// Uses provided func
	called := false
	m := &Repo{
		GetByIDFn: func(gotCtx context.Context, id uint64) (*domain.TravelService, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByID ctx mismatch")
			}
			if id != 2 {
				t.Fatalf("GetByID id mismatch: got %d", id)
			}
			return want, nil
		},
	}
	got, err := m.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByID: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByIDFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByID(ctx, 2)
	if err != context.Canceled {
		t.Fatalf("GetByID default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID default: want nil record, got %+v", got)
	}
}

func TestRepo_ListUpdateDelete(t *testing.T) {
	ctx := context.Background()

	// List uses provided func and propagates the filter
	m := &Repo{
		ListFn: func(gotCtx context.Context, f domain.Filter) ([]domain.TravelService, error) {
			if f.MonthNumber != 4 {
				t.Fatalf("List filter mismatch: %+v", f)
			}
			return []domain.TravelService{{ID: 9}}, nil
		},
	}
	rows, err := m.List(ctx, domain.Filter{MonthNumber: 4})
	if err != nil || len(rows) != 1 || rows[0].ID != 9 {
		t.Fatalf("List: rows=%+v err=%v", rows, err)
	}

	// Default List → empty, nil error
	m = &Repo{}
	if rows, err := m.List(ctx, domain.Filter{}); err != nil || rows != nil {
		t.Fatalf("List default: rows=%+v err=%v", rows, err)
	}

	// Update uses provided func
	wantErr := errors.New("update-fail")
	m = &Repo{
		UpdateFn: func(gotCtx context.Context, id uint64, s *domain.TravelService) error {
			if id != 7 {
				t.Fatalf("Update id mismatch: %d", id)
			}
			return wantErr
		},
	}
	if err := m.Update(ctx, 7, &domain.TravelService{}); !errors.Is(err, wantErr) {
		t.Fatalf("Update: want %v, got %v", wantErr, err)
	}

	// Delete / DeleteMany defaults
	m = &Repo{}
	if err := m.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete default: %v", err)
	}
	if n, err := m.DeleteMany(ctx, []uint64{1, 2}); err != nil || n != 0 {
		t.Fatalf("DeleteMany default: n=%d err=%v", n, err)
	}

	// DeleteMany uses provided func
	m = &Repo{
		DeleteManyFn: func(gotCtx context.Context, ids []uint64) (int64, error) {
			return int64(len(ids)), nil
		},
	}
	if n, err := m.DeleteMany(ctx, []uint64{1, 2, 3}); err != nil || n != 3 {
		t.Fatalf("DeleteMany: n=%d err=%v", n, err)
	}
}
