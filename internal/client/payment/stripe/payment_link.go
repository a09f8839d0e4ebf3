package stripe

import (
	"context"
	"fmt"

	payment "github.com/fullarch/financing-api/internal/client/payment"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// CreatePaymentLink creates a shareable payment link for a single price using
// the new stripe.Client API. Links require card payment and billing address
// collection.
func (c *Client) CreatePaymentLink(ctx context.Context, priceID string, quantity int64) (payment.PaymentLink, error) {
	params := &stripe.PaymentLinkCreateParams{
		LineItems: []*stripe.PaymentLinkCreateLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		PaymentMethodTypes: []*string{
			stripe.String(string(stripe.PaymentLinkPaymentMethodTypeCard)),
		},
		BillingAddressCollection: stripe.String(string(stripe.PaymentLinkBillingAddressCollectionRequired)),
	}

	c.logger.Info("Creating Stripe payment link", zap.String("price_id", priceID), zap.Int64("quantity", quantity))

	newStripeLink, err := c.client.V1PaymentLinks.Create(ctx, params)
	if err != nil {
		c.logger.Error("Failed to create Stripe payment link", zap.Error(err), zap.String("price_id", priceID))
		return payment.PaymentLink{}, fmt.Errorf("stripe_client.CreatePaymentLink: failed to create payment link: %w", err)
	}

	c.logger.Info("Successfully created Stripe payment link",
		zap.String("stripe_payment_link_id", newStripeLink.ID),
		zap.String("url", newStripeLink.URL))

	return payment.PaymentLink{
		ExternalID: newStripeLink.ID,
		URL:        newStripeLink.URL,
	}, nil
}
