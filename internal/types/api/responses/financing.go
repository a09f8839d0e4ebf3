package responses

// PlanResponse is the success body for POST /api/create-plan
type PlanResponse struct {
	Message           string  `json:"message"`
	CustomerID        string  `json:"customerId"`
	DownPaymentAmount float64 `json:"downPaymentAmount"`
	Remaining         float64 `json:"remaining"`
	Monthly           float64 `json:"monthly"`
	PaymentLinkURL    string  `json:"paymentLinkUrl"`
}

// InvoiceScheduleResponse is the success body for POST /api/create-invoice-schedule
type InvoiceScheduleResponse struct {
	Message        string  `json:"message"`
	SubscriptionID string  `json:"subscriptionId"`
	AmountMonthly  float64 `json:"amountMonthly"`
	TermMonths     int     `json:"termMonths"`
	Remaining      float64 `json:"remaining"`
}
