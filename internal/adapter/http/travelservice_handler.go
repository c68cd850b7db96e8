package http

import (
	"errors"
	"net/http"
	"time"

	domain "travel-services-backend/internal/domain/travelservice"
	usecase "travel-services-backend/internal/usecase/travelservice"

	"github.com/labstack/echo/v4"
)

type TravelServiceHandler struct{ uc *usecase.Usecase }

func NewTravelServiceHandler(uc *usecase.Usecase) *TravelServiceHandler {
	return &TravelServiceHandler{uc: uc}
}

// serviceReq is one submitted form. Dates arrive as canonical `YYYY-MM-DD`
// strings (aligns with the DATE columns); the month pair may arrive
// incomplete or mismatched, the usecase resolves it.
type serviceReq struct {
	ServiceType      string  `json:"service_type"       validate:"required,servicetype"`
	Control          string  `json:"control"            validate:"max=64"`
	IssueDate        string  `json:"issue_date"         validate:"required,datetime=2006-01-02"`
	Issuer           string  `json:"issuer"             validate:"max=64"`
	Airline          string  `json:"airline"            validate:"max=64"`
	DepartureDate    string  `json:"departure_date"     validate:"required,datetime=2006-01-02"`
	MonthNumber      int     `json:"month_number"       validate:"month"`
	MonthName        string  `json:"month_name"         validate:"max=16"`
	Origin           string  `json:"origin"             validate:"max=64"`
	Destination      string  `json:"destination"        validate:"max=64"`
	UserName         string  `json:"user_name"          validate:"required,max=64"`
	Reason           string  `json:"reason"`
	CostCenter       string  `json:"cost_center"        validate:"max=32"`
	ServiceCost      float64 `json:"service_cost"       validate:"gte=0,dec2"`
	Fee              float64 `json:"fee"                validate:"gte=0,dec2"`
	Status           string  `json:"status"             validate:"required,svcstatus"`
	Supplier         string  `json:"supplier"           validate:"max=64"`
	InvoiceIssued    bool    `json:"invoice_issued"`
	InvoiceNumber    string  `json:"invoice_number"     validate:"required_if=InvoiceIssued true,max=64"`
	InvoiceIssueDate string  `json:"invoice_issue_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r serviceReq) toInput() (usecase.Input, error) {
	issue, err := time.Parse(dateLayout, r.IssueDate)
	if err != nil {
		return usecase.Input{}, errors.New("issue_date must be a yyyy-mm-dd date")
	}
	departure, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return usecase.Input{}, errors.New("departure_date must be a yyyy-mm-dd date")
	}

	in := usecase.Input{
		ServiceType:   r.ServiceType,
		Control:       r.Control,
		IssueDate:     issue,
		Issuer:        r.Issuer,
		Airline:       r.Airline,
		DepartureDate: departure,
		MonthNumber:   r.MonthNumber,
		MonthName:     r.MonthName,
		Origin:        r.Origin,
		Destination:   r.Destination,
		UserName:      r.UserName,
		Reason:        r.Reason,
		CostCenter:    r.CostCenter,
		ServiceCost:   r.ServiceCost,
		Fee:           r.Fee,
		Status:        r.Status,
		Supplier:      r.Supplier,
		InvoiceIssued: r.InvoiceIssued,
		InvoiceNumber: r.InvoiceNumber,
	}
	if r.InvoiceIssueDate != "" {
		d, err := time.Parse(dateLayout, r.InvoiceIssueDate)
		if err != nil {
			return usecase.Input{}, errors.New("invoice_issue_date must be a yyyy-mm-dd date")
		}
		in.InvoiceIssueDate = &d
	}
	return in, nil
}

func (h *TravelServiceHandler) Create(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TravelServiceHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TravelServiceHandler) List(c echo.Context) error {
	q := usecase.ListQuery{
		ServiceType: c.QueryParam("service_type"),
		Status:      c.QueryParam("status"),
	}

	var err error
	if q.MonthNumber, err = parseMonthParam(c, "month"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if q.IssueFrom, err = parseDateParam(c, "issue_from"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if q.IssueTo, err = parseDateParam(c, "issue_to"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if q.DepartureFrom, err = parseDateParam(c, "departure_from"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if q.DepartureTo, err = parseDateParam(c, "departure_to"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	list, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *TravelServiceHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TravelServiceHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type deleteManyReq struct {
	IDs []uint64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

func (h *TravelServiceHandler) DeleteMany(c echo.Context) error {
	var req deleteManyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	n, err := h.uc.DeleteMany(c.Request().Context(), req.IDs)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": n})
}

// Map domain errors → HTTP codes
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrInvalidRecord):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
