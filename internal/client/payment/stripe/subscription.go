package stripe

import (
	"context"
	"fmt"

	payment "github.com/fullarch/financing-api/internal/client/payment"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// mapStripeSubscription converts a Stripe Subscription object to the
// canonical payment.Subscription.
func mapStripeSubscription(stripeSub *stripe.Subscription) payment.Subscription {
	if stripeSub == nil {
		return payment.Subscription{}
	}

	var items []payment.SubscriptionItem
	if stripeSub.Items != nil && len(stripeSub.Items.Data) > 0 {
		items = make([]payment.SubscriptionItem, len(stripeSub.Items.Data))
		for i, item := range stripeSub.Items.Data {
			if item == nil {
				continue
			}
			var priceID string
			if item.Price != nil {
				priceID = item.Price.ID
			}
			items[i] = payment.SubscriptionItem{
				PriceID:  priceID,
				Quantity: int(item.Quantity),
			}
		}
	}

	var customerID string
	if stripeSub.Customer != nil {
		customerID = stripeSub.Customer.ID
	}

	return payment.Subscription{
		ExternalID: stripeSub.ID,
		CustomerID: customerID,
		Status:     string(stripeSub.Status),
		Items:      items,
		Metadata:   stripeSub.Metadata,
	}
}

// CreateSubscription creates a new subscription in Stripe.
func (c *Client) CreateSubscription(ctx context.Context, subData payment.Subscription) (payment.Subscription, error) {
	if len(subData.Items) == 0 {
		return payment.Subscription{}, fmt.Errorf("subscription must have at least one item")
	}

	stripeItems := make([]*stripe.SubscriptionCreateItemParams, len(subData.Items))
	for i, item := range subData.Items {
		stripeItems[i] = &stripe.SubscriptionCreateItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(int64(item.Quantity)),
		}
	}

	params := &stripe.SubscriptionCreateParams{
		Customer: stripe.String(subData.CustomerID),
		Items:    stripeItems,
		Metadata: subData.Metadata,
	}

	if subData.PaymentBehavior != "" {
		params.PaymentBehavior = stripe.String(subData.PaymentBehavior)
	}
	if subData.SaveDefaultPaymentMethod {
		params.PaymentSettings = &stripe.SubscriptionCreatePaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String(string(stripe.SubscriptionPaymentSettingsSaveDefaultPaymentMethodOnSubscription)),
		}
	}

	params.AddExpand("latest_invoice")

	c.logger.Info("Creating Stripe subscription",
		zap.String("customer_id", subData.CustomerID),
		zap.Int("item_count", len(stripeItems)))

	newStripeSub, err := c.client.V1Subscriptions.Create(ctx, params)
	if err != nil {
		c.logger.Error("Failed to create Stripe subscription", zap.Error(err), zap.String("customer_id", subData.CustomerID))
		return payment.Subscription{}, fmt.Errorf("stripe_client.CreateSubscription: %w", err)
	}

	mappedSub := mapStripeSubscription(newStripeSub)
	c.logger.Info("Successfully created Stripe subscription", zap.String("stripe_subscription_id", newStripeSub.ID))
	return mappedSub, nil
}
