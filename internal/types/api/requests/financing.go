package requests

// CreatePlanRequest is the inbound body for POST /api/create-plan.
//
// Fields are pointers so that presence can be distinguished from zero values:
// a field that is null or absent fails validation, while an explicit 0 is a
// present (if nonsensical) value and passes it.
type CreatePlanRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	TotalFee    *float64 `json:"totalFee"`
	TermMonths  *int     `json:"termMonths"`
	DownPercent *float64 `json:"downPercent"` // fraction, e.g. 0.2 for 20%
}

// CreateInvoiceScheduleRequest is the inbound body for
// POST /api/create-invoice-schedule.
type CreateInvoiceScheduleRequest struct {
	CustomerID *string  `json:"customerId"`
	Remaining  *float64 `json:"remaining"`
	TermMonths *int     `json:"termMonths"`
}
