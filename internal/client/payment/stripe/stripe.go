package stripe

import (
	"fmt"

	payment "github.com/fullarch/financing-api/internal/client/payment"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// Ensure Client implements the payment.Processor interface
var _ payment.Processor = (*Client)(nil)

// Client implements payment.Processor backed by Stripe. Method
// implementations for specific resources (Customer, Product, etc.) are in
// separate files within this package (e.g., customer.go, product.go).
//
// A single Client is constructed at process start and shared by all requests;
// the underlying stripe.Client is safe for concurrent use.
type Client struct {
	client *stripe.Client
	logger *zap.Logger
}

// New creates a new Stripe client from the secret API key. It fails fast
// when the key is absent so a misconfigured process never starts serving.
func New(apiKey string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key not provided")
	}

	return &Client{
		client: stripe.NewClient(apiKey, nil),
		logger: logger,
	}, nil
}

// Name returns the name of the provider.
func (c *Client) Name() string {
	return "stripe"
}
