package payment

// Canonical provider-agnostic representations of the external processor's
// entities. Only the fields the financing flow actually sends or reads are
// modeled; provider-specific detail stays inside the provider packages.

// Customer represents a customer record held by the external processor.
type Customer struct {
	// ExternalID is the processor's opaque identity for the customer.
	ExternalID string
	Email      string
	Name       string
	Metadata   map[string]string
}

// Product represents a payable item in the external processor.
type Product struct {
	ExternalID  string
	Name        string
	Description string
	Metadata    map[string]string
}

// RecurringInterval describes the recurrence of a recurring price.
type RecurringInterval struct {
	Interval      string // e.g. "month"
	IntervalCount int
}

// Price represents a price attached to a product. Amount is expressed in
// minor currency units (cents for USD). A nil Recurring means one-time.
type Price struct {
	ExternalID string
	ProductID  string
	Amount     int64
	Currency   string
	Recurring  *RecurringInterval
	Metadata   map[string]string
}

// PaymentLink is a hosted, shareable URL for completing a one-time charge.
type PaymentLink struct {
	ExternalID string
	URL        string
}

// SubscriptionItem ties a subscription to a price.
type SubscriptionItem struct {
	PriceID  string
	Quantity int
}

// Subscription represents a recurring payable schedule for a customer.
type Subscription struct {
	ExternalID string
	CustomerID string
	Status     string
	Items      []SubscriptionItem
	// PaymentBehavior controls how the processor treats the first payment.
	// "default_incomplete" leaves the subscription incomplete until the payer
	// confirms the initial payment.
	PaymentBehavior string
	// SaveDefaultPaymentMethod persists the payment method used for the first
	// payment as the default for future charges.
	SaveDefaultPaymentMethod bool
	Metadata                 map[string]string
}
