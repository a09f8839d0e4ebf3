package stripe

import (
	"context"
	"fmt"

	payment "github.com/fullarch/financing-api/internal/client/payment"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// mapStripeCustomer converts a Stripe Customer object to the canonical
// payment.Customer.
func mapStripeCustomer(stripeCust *stripe.Customer) payment.Customer {
	if stripeCust == nil {
		return payment.Customer{}
	}

	return payment.Customer{
		ExternalID: stripeCust.ID,
		Email:      stripeCust.Email,
		Name:       stripeCust.Name,
		Metadata:   stripeCust.Metadata,
	}
}

// FindCustomerByEmail looks up an existing customer by exact email match,
// limited to one result. It returns (nil, nil) when no customer matches.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*payment.Customer, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Limit = stripe.Int64(1)

	c.logger.Info("Looking up Stripe customer by email", zap.String("email", email))

	// Iterate the stripe.Seq2 by calling it directly; range-over-func
	// requires Go 1.23, which is newer than the toolchain building this.
	var (
		found   *payment.Customer
		listErr error
	)
	c.client.V1Customers.List(ctx, params)(func(stripeCust *stripe.Customer, err error) bool {
		if err != nil {
			listErr = err
			return false
		}
		if stripeCust == nil {
			return true
		}
		mapped := mapStripeCustomer(stripeCust)
		found = &mapped
		return false
	})
	if listErr != nil {
		c.logger.Error("Failed to list Stripe customers", zap.Error(listErr), zap.String("email", email))
		return nil, fmt.Errorf("stripe_client.FindCustomerByEmail: failed to list customers: %w", listErr)
	}
	if found != nil {
		c.logger.Info("Found existing Stripe customer",
			zap.String("stripe_customer_id", found.ExternalID),
			zap.String("email", email))
		return found, nil
	}

	c.logger.Info("No Stripe customer found for email", zap.String("email", email))
	return nil, nil
}

// CreateCustomer creates a new customer in Stripe using the new stripe.Client API.
func (c *Client) CreateCustomer(ctx context.Context, customerData payment.Customer) (payment.Customer, error) {
	params := &stripe.CustomerCreateParams{
		Email:    stripe.String(customerData.Email),
		Name:     stripe.String(customerData.Name),
		Metadata: customerData.Metadata,
	}

	c.logger.Info("Creating Stripe customer", zap.String("email", customerData.Email))

	newStripeCustomer, err := c.client.V1Customers.Create(ctx, params)
	if err != nil {
		c.logger.Error("Failed to create Stripe customer", zap.Error(err), zap.String("email", customerData.Email))
		return payment.Customer{}, fmt.Errorf("stripe_client.CreateCustomer: failed to create customer: %w", err)
	}

	c.logger.Info("Successfully created Stripe customer", zap.String("stripe_customer_id", newStripeCustomer.ID))
	return mapStripeCustomer(newStripeCustomer), nil
}
