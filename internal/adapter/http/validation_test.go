package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestServiceTypeValidation(t *testing.T) {
	type P struct {
		ServiceType string `validate:"servicetype"`
	}
	cv := NewValidator()

	for _, s := range []string{"TRANSPORTE", "HOSPEDAGEM", "PASSAGEM AEREA", "SEGURO", " SEGURO "} {
		if err := cv.Validate(P{ServiceType: s}); err != nil {
			t.Fatalf("expected valid service type %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",           // empty
		"transporte", // catalog is uppercase
		"CRUZEIRO",   // not in the catalog
		"PASSAGEM",   // partial match
	} {
		err := cv.Validate(P{ServiceType: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "ServiceType", "service type options") {
			t.Fatalf("expected servicetype message for %q, got: %+v", s, fe)
		}
	}
}

func TestStatusValidation(t *testing.T) {
	type P struct {
		Status string `validate:"svcstatus"`
	}
	cv := NewValidator()

	for _, s := range []string{"CANCELADA", "ATENDIDA", "EM ABERTO", "EM ABERTO "} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected valid status %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{"", "PENDENTE", "aberto"} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Status", "status options") {
			t.Fatalf("expected svcstatus message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Cost float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{545.01, 2.00, 0.9, 1.2, 0} {
		if err := cv.Validate(P{Cost: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Cost: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Cost", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestMonthValidation(t *testing.T) {
	type P struct {
		Month int `validate:"month"`
	}
	cv := NewValidator()

	for _, n := range []int{0, 1, 6, 12} {
		if err := cv.Validate(P{Month: n}); err != nil {
			t.Fatalf("expected month OK for %d, got %v", n, err)
		}
	}
	for _, n := range []int{-1, 13, 99} {
		err := cv.Validate(P{Month: n})
		if err == nil {
			t.Fatalf("expected month error for %d", n)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Month", "between 1 and 12") {
			t.Fatalf("expected month message for %d, got %+v", n, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string  `validate:"required"`
		Min  int     `validate:"gte=10"`
		Max  int     `validate:"lte=5"`
		Fee  float64 `validate:"dec2,gte=0"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name: "",     // required
		Min:  9,      // gte=10
		Max:  6,      // lte=5
		Fee:  -1.333, // dec2 fails first, gte also violated
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Fee", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Fee: %+v", fe)
	}
}

func TestJSONTagNamesInErrors(t *testing.T) {
	type P struct {
		UserName string `json:"user_name" validate:"required"`
		Skipped  string `json:"-" validate:"-"`
	}
	cv := NewValidator()

	err := cv.Validate(P{})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "user_name", "is required") {
		t.Fatalf("expected json tag name in errors, got: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
