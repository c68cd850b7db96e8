package travelservice

import (
	"time"
)

// Input carries one submitted form. The HTTP layer binds and parses dates;
// trimming, rounding and the derived fields happen here.
type Input struct {
	ServiceType      string
	Control          string
	IssueDate        time.Time
	Issuer           string
	Airline          string
	DepartureDate    time.Time
	MonthNumber      int
	MonthName        string
	Origin           string
	Destination      string
	UserName         string
	Reason           string
	CostCenter       string
	ServiceCost      float64
	Fee              float64
	Status           string
	Supplier         string
	InvoiceIssued    bool
	InvoiceNumber    string
	InvoiceIssueDate *time.Time
}

// ListQuery mirrors the optional filters of the table view.
type ListQuery struct {
	ServiceType   string
	Status        string
	MonthNumber   int
	IssueFrom     *time.Time
	IssueTo       *time.Time
	DepartureFrom *time.Time
	DepartureTo   *time.Time
}

// ServiceDTO is the wire shape of one record. Date-only columns travel as
// yyyy-mm-dd strings so the form can round-trip them untouched.
type ServiceDTO struct {
	ID               uint64    `json:"id"`
	ServiceType      string    `json:"service_type"`
	Control          string    `json:"control"`
	IssueDate        string    `json:"issue_date"`
	Issuer           string    `json:"issuer"`
	Airline          string    `json:"airline"`
	DepartureDate    string    `json:"departure_date"`
	MonthNumber      int       `json:"month_number"`
	MonthName        string    `json:"month_name"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	UserName         string    `json:"user_name"`
	Reason           string    `json:"reason"`
	CostCenter       string    `json:"cost_center"`
	ServiceCost      float64   `json:"service_cost"`
	Fee              float64   `json:"fee"`
	TotalCost        float64   `json:"total_cost"`
	Status           string    `json:"status"`
	Supplier         string    `json:"supplier"`
	InvoiceIssued    bool      `json:"invoice_issued"`
	InvoiceNumber    string    `json:"invoice_number"`
	InvoiceIssueDate string    `json:"invoice_issue_date"`
	CreatedAt        time.Time `json:"created_at"`
}
