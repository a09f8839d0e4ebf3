package stripe

import (
	"context"
	"fmt"

	payment "github.com/fullarch/financing-api/internal/client/payment"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// mapStripePrice converts a Stripe Price object to the canonical payment.Price.
func mapStripePrice(stripePrice *stripe.Price) payment.Price {
	if stripePrice == nil {
		return payment.Price{}
	}

	var recurring *payment.RecurringInterval
	if stripePrice.Recurring != nil {
		recurring = &payment.RecurringInterval{
			Interval:      string(stripePrice.Recurring.Interval),
			IntervalCount: int(stripePrice.Recurring.IntervalCount),
		}
	}

	var productID string
	if stripePrice.Product != nil {
		productID = stripePrice.Product.ID
	}

	return payment.Price{
		ExternalID: stripePrice.ID,
		ProductID:  productID,
		Amount:     stripePrice.UnitAmount, // UnitAmount is in the smallest currency unit
		Currency:   string(stripePrice.Currency),
		Recurring:  recurring,
		Metadata:   stripePrice.Metadata,
	}
}

// CreatePrice creates a new price in Stripe using the new stripe.Client API.
// A nil priceData.Recurring produces a one-time price; Stripe infers the
// price type from the presence of the Recurring param.
func (c *Client) CreatePrice(ctx context.Context, priceData payment.Price) (payment.Price, error) {
	params := &stripe.PriceCreateParams{
		Product:    stripe.String(priceData.ProductID),
		UnitAmount: stripe.Int64(priceData.Amount),
		Currency:   stripe.String(string(stripe.Currency(priceData.Currency))),
		Metadata:   priceData.Metadata,
	}

	if priceData.Recurring != nil {
		params.Recurring = &stripe.PriceCreateRecurringParams{
			Interval:      stripe.String(string(stripe.PriceRecurringInterval(priceData.Recurring.Interval))),
			IntervalCount: stripe.Int64(int64(priceData.Recurring.IntervalCount)),
		}
	}

	c.logger.Info("Creating Stripe price",
		zap.String("product_id", priceData.ProductID),
		zap.Int64("amount", priceData.Amount),
		zap.Bool("recurring", priceData.Recurring != nil))

	newStripePrice, err := c.client.V1Prices.Create(ctx, params)
	if err != nil {
		c.logger.Error("Failed to create Stripe price", zap.Error(err), zap.String("product_id", priceData.ProductID))
		return payment.Price{}, fmt.Errorf("stripe_client.CreatePrice: failed to create price: %w", err)
	}

	c.logger.Info("Successfully created Stripe price", zap.String("stripe_price_id", newStripePrice.ID))
	return mapStripePrice(newStripePrice), nil
}
