package stripe

import (
	"context"
	"fmt"

	payment "github.com/fullarch/financing-api/internal/client/payment"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// mapStripeProduct converts a Stripe Product object to the canonical
// payment.Product.
func mapStripeProduct(stripeProd *stripe.Product) payment.Product {
	if stripeProd == nil {
		return payment.Product{}
	}

	return payment.Product{
		ExternalID:  stripeProd.ID,
		Name:        stripeProd.Name,
		Description: stripeProd.Description,
		Metadata:    stripeProd.Metadata,
	}
}

// CreateProduct creates a new product in Stripe using the new stripe.Client API.
func (c *Client) CreateProduct(ctx context.Context, productData payment.Product) (payment.Product, error) {
	params := &stripe.ProductCreateParams{
		Name:     stripe.String(productData.Name),
		Metadata: productData.Metadata,
	}
	if productData.Description != "" {
		params.Description = stripe.String(productData.Description)
	}

	c.logger.Info("Creating Stripe product", zap.String("name", productData.Name))

	newStripeProduct, err := c.client.V1Products.Create(ctx, params)
	if err != nil {
		c.logger.Error("Failed to create Stripe product", zap.Error(err), zap.String("name", productData.Name))
		return payment.Product{}, fmt.Errorf("stripe_client.CreateProduct: failed to create product: %w", err)
	}

	c.logger.Info("Successfully created Stripe product", zap.String("stripe_product_id", newStripeProduct.ID))
	return mapStripeProduct(newStripeProduct), nil
}
