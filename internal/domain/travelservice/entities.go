package travelservice

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("travel service not found")
	ErrInvalidRecord = errors.New("invalid travel service")
)

type ServiceType string

const (
	TypeTransport ServiceType = "TRANSPORTE"
	TypeLodging   ServiceType = "HOSPEDAGEM"
	TypeAirfare   ServiceType = "PASSAGEM AEREA"
	TypeInsurance ServiceType = "SEGURO"
)

type Status string

const (
	StatusCanceled  Status = "CANCELADA"
	StatusFulfilled Status = "ATENDIDA"
	StatusOpen      Status = "EM ABERTO"
)

// Table: travel_services
type TravelService struct {
	ID               uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ServiceType      ServiceType `gorm:"column:service_type;size:32;not null;index:idx_travel_services_type" json:"service_type"`
	Control          string      `gorm:"column:control;size:64" json:"control"`
	IssueDate        time.Time   `gorm:"column:issue_date;type:date;not null;index:idx_travel_services_issue_date" json:"issue_date"`
	Issuer           string      `gorm:"column:issuer;size:64" json:"issuer"`
	Airline          string      `gorm:"column:airline;size:64" json:"airline"`
	DepartureDate    time.Time   `gorm:"column:departure_date;type:date;not null" json:"departure_date"`
	MonthNumber      int         `gorm:"column:month_number;not null" json:"month_number"`
	MonthName        string      `gorm:"column:month_name;size:16;not null" json:"month_name"`
	Origin           string      `gorm:"column:origin;size:64" json:"origin"`
	Destination      string      `gorm:"column:destination;size:64" json:"destination"`
	UserName         string      `gorm:"column:user_name;size:64;not null" json:"user_name"`
	Reason           string      `gorm:"column:reason;type:text" json:"reason"`
	CostCenter       string      `gorm:"column:cost_center;size:32" json:"cost_center"`
	ServiceCost      float64     `gorm:"column:service_cost;type:decimal(12,2);not null;default:0" json:"service_cost"`
	Fee              float64     `gorm:"column:fee;type:decimal(12,2);not null;default:0" json:"fee"`
	TotalCost        float64     `gorm:"column:total_cost;type:decimal(12,2);not null;default:0" json:"total_cost"`
	Status           Status      `gorm:"column:status;size:32;not null;index:idx_travel_services_status" json:"status"`
	Supplier         string      `gorm:"column:supplier;size:64" json:"supplier"`
	InvoiceIssued    bool        `gorm:"column:invoice_issued;not null;default:false" json:"invoice_issued"`
	InvoiceNumber    string      `gorm:"column:invoice_number;size:64" json:"invoice_number"`
	InvoiceIssueDate *time.Time  `gorm:"column:invoice_issue_date;type:date" json:"invoice_issue_date"`
	CreatedAt        time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TravelService) TableName() string { return "travel_services" }

// Validate re-checks the row-level constraints the form layer already
// enforces, so nothing below the usecase can persist a half-built record.
func (s *TravelService) Validate() error {
	if !ValidServiceType(s.ServiceType) {
		return fmt.Errorf("%w: unknown service_type %q", ErrInvalidRecord, s.ServiceType)
	}
	if s.IssueDate.IsZero() {
		return fmt.Errorf("%w: issue_date is required", ErrInvalidRecord)
	}
	if s.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departure_date is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(s.UserName) == "" {
		return fmt.Errorf("%w: user_name is required", ErrInvalidRecord)
	}
	if s.ServiceCost < 0 {
		return fmt.Errorf("%w: service_cost must be >= 0", ErrInvalidRecord)
	}
	if s.Fee < 0 {
		return fmt.Errorf("%w: fee must be >= 0", ErrInvalidRecord)
	}
	if s.TotalCost != Round2(s.ServiceCost+s.Fee) {
		return fmt.Errorf("%w: total_cost must equal service_cost+fee", ErrInvalidRecord)
	}
	if !ValidStatus(s.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, s.Status)
	}
	if name, ok := MonthName(s.MonthNumber); !ok || name != s.MonthName {
		return fmt.Errorf("%w: month_number %d does not match month_name %q", ErrInvalidRecord, s.MonthNumber, s.MonthName)
	}
	if s.InvoiceIssued && strings.TrimSpace(s.InvoiceNumber) == "" {
		return fmt.Errorf("%w: invoice_number is required when invoice_issued", ErrInvalidRecord)
	}
	return nil
}
