package payment

import "context"

// Processor is the contract the financing flow has with the external payment
// processor. All durable state (customers, products, prices, subscriptions)
// lives on the processor side; implementations are expected to be safe for
// concurrent use.
type Processor interface {
	// Name returns the provider name, e.g. "stripe".
	Name() string

	// FindCustomerByEmail looks up at most one customer by exact email match.
	// It returns (nil, nil) when no customer matches.
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)

	// CreateCustomer creates a new customer record and returns it with the
	// processor-assigned ExternalID populated.
	CreateCustomer(ctx context.Context, customer Customer) (Customer, error)

	// CreateProduct creates a payable item and returns it with ExternalID set.
	CreateProduct(ctx context.Context, product Product) (Product, error)

	// CreatePrice creates a one-time or recurring price (depending on
	// price.Recurring) and returns it with ExternalID set.
	CreatePrice(ctx context.Context, price Price) (Price, error)

	// CreatePaymentLink creates a shareable payment link for a single price.
	CreatePaymentLink(ctx context.Context, priceID string, quantity int64) (PaymentLink, error)

	// CreateSubscription creates a recurring subscription for a customer.
	CreateSubscription(ctx context.Context, subscription Subscription) (Subscription, error)
}
