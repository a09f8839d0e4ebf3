package params

// PlanCreateParams contains validated parameters for creating a financing plan
type PlanCreateParams struct {
	Name        string
	Email       string
	TotalFee    float64
	TermMonths  int
	DownPercent float64 // fraction, e.g. 0.2 for 20%
}

// AutopayCreateParams contains validated parameters for creating a recurring
// autopay schedule against an already-resolved customer
type AutopayCreateParams struct {
	CustomerID string
	Remaining  float64
	TermMonths int
}
