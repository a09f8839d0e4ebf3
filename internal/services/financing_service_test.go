package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fullarch/financing-api/internal/client/payment"
	"github.com/fullarch/financing-api/internal/mocks"
	"github.com/fullarch/financing-api/internal/services"
	"github.com/fullarch/financing-api/internal/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newFinancingService(processor payment.Processor) *services.FinancingService {
	return services.NewFinancingService(processor, services.NewPlanCalculator(), zap.NewNop())
}

func TestFinancingService_CreatePlan(t *testing.T) {
	ctx := context.Background()

	planParams := params.PlanCreateParams{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		TotalFee:    1000,
		TermMonths:  12,
		DownPercent: 0.2,
	}

	t.Run("creates customer, price and payment link for a new customer", func(t *testing.T) {
		processor := mocks.NewMockProcessorForTest(t)

		processor.EXPECT().
			FindCustomerByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)

		processor.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, customer payment.Customer) (payment.Customer, error) {
				assert.Equal(t, "Jane Doe", customer.Name)
				assert.Equal(t, "jane@example.com", customer.Email)
				assert.Equal(t, "financing-form", customer.Metadata["source"])
				customer.ExternalID = "cus_123"
				return customer, nil
			}).
			Times(1)

		processor.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product payment.Product) (payment.Product, error) {
				assert.Contains(t, product.Name, "Jane Doe")
				product.ExternalID = "prod_123"
				return product, nil
			})

		processor.EXPECT().
			CreatePrice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, price payment.Price) (payment.Price, error) {
				assert.Equal(t, "prod_123", price.ProductID)
				assert.Equal(t, int64(20000), price.Amount) // 200 USD in minor units
				assert.Equal(t, "usd", price.Currency)
				assert.Nil(t, price.Recurring)
				price.ExternalID = "price_123"
				return price, nil
			})

		processor.EXPECT().
			CreatePaymentLink(gomock.Any(), "price_123", int64(1)).
			Return(payment.PaymentLink{ExternalID: "plink_123", URL: "https://pay.example.com/plink_123"}, nil)

		svc := newFinancingService(processor)
		plan, err := svc.CreatePlan(ctx, planParams)

		require.NoError(t, err)
		assert.Equal(t, "cus_123", plan.CustomerID)
		assert.Equal(t, 200.0, plan.DownPaymentAmount)
		assert.Equal(t, 800.0, plan.Remaining)
		assert.Equal(t, 66.67, plan.Monthly)
		assert.Equal(t, "https://pay.example.com/plink_123", plan.PaymentLinkURL)
	})

	t.Run("reuses an existing customer with the same email", func(t *testing.T) {
		processor := mocks.NewMockProcessorForTest(t)

		processor.EXPECT().
			FindCustomerByEmail(gomock.Any(), "jane@example.com").
			Return(&payment.Customer{ExternalID: "cus_existing", Email: "jane@example.com"}, nil)

		// No CreateCustomer expectation: creating a duplicate would fail the test.
		processor.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(payment.Product{ExternalID: "prod_123"}, nil)
		processor.EXPECT().
			CreatePrice(gomock.Any(), gomock.Any()).
			Return(payment.Price{ExternalID: "price_123"}, nil)
		processor.EXPECT().
			CreatePaymentLink(gomock.Any(), "price_123", int64(1)).
			Return(payment.PaymentLink{URL: "https://pay.example.com/plink_456"}, nil)

		svc := newFinancingService(processor)
		plan, err := svc.CreatePlan(ctx, planParams)

		require.NoError(t, err)
		assert.Equal(t, "cus_existing", plan.CustomerID)
	})

	t.Run("propagates price creation failure without rolling back the customer", func(t *testing.T) {
		processor := mocks.NewMockProcessorForTest(t)

		processor.EXPECT().
			FindCustomerByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)
		processor.EXPECT().
			CreateCustomer(gomock.Any(), gomock.Any()).
			Return(payment.Customer{ExternalID: "cus_123"}, nil).
			Times(1)
		processor.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(payment.Product{ExternalID: "prod_123"}, nil)
		processor.EXPECT().
			CreatePrice(gomock.Any(), gomock.Any()).
			Return(payment.Price{}, fmt.Errorf("invalid amount"))

		svc := newFinancingService(processor)
		plan, err := svc.CreatePlan(ctx, planParams)

		require.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "invalid amount")
	})

	t.Run("propagates customer lookup failure", func(t *testing.T) {
		processor := mocks.NewMockProcessorForTest(t)

		processor.EXPECT().
			FindCustomerByEmail(gomock.Any(), "jane@example.com").
			Return(nil, fmt.Errorf("rate limited"))

		svc := newFinancingService(processor)
		plan, err := svc.CreatePlan(ctx, planParams)

		require.Error(t, err)
		assert.Nil(t, plan)
	})
}

func TestFinancingService_CreateAutopaySchedule(t *testing.T) {
	ctx := context.Background()

	autopayParams := params.AutopayCreateParams{
		CustomerID: "cus_123",
		Remaining:  800,
		TermMonths: 12,
	}

	t.Run("creates a recurring subscription with ceiling monthly amount", func(t *testing.T) {
		processor := mocks.NewMockProcessorForTest(t)

		processor.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, product payment.Product) (payment.Product, error) {
				assert.Contains(t, product.Name, "12 months")
				product.ExternalID = "prod_monthly"
				return product, nil
			})

		processor.EXPECT().
			CreatePrice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, price payment.Price) (payment.Price, error) {
				assert.Equal(t, "prod_monthly", price.ProductID)
				assert.Equal(t, int64(6700), price.Amount) // ceil(800/12) = 67 USD in minor units
				assert.Equal(t, "usd", price.Currency)
				require.NotNil(t, price.Recurring)
				assert.Equal(t, "month", price.Recurring.Interval)
				assert.Equal(t, 1, price.Recurring.IntervalCount)
				price.ExternalID = "price_monthly"
				return price, nil
			})

		processor.EXPECT().
			CreateSubscription(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub payment.Subscription) (payment.Subscription, error) {
				assert.Equal(t, "cus_123", sub.CustomerID)
				require.Len(t, sub.Items, 1)
				assert.Equal(t, "price_monthly", sub.Items[0].PriceID)
				assert.Equal(t, 1, sub.Items[0].Quantity)
				assert.Equal(t, "default_incomplete", sub.PaymentBehavior)
				assert.True(t, sub.SaveDefaultPaymentMethod)
				sub.ExternalID = "sub_123"
				sub.Status = "incomplete"
				return sub, nil
			})

		svc := newFinancingService(processor)
		schedule, err := svc.CreateAutopaySchedule(ctx, autopayParams)

		require.NoError(t, err)
		assert.Equal(t, "sub_123", schedule.SubscriptionID)
		assert.Equal(t, 67.0, schedule.AmountMonthly)
		assert.Equal(t, 12, schedule.TermMonths)
		assert.Equal(t, 800.0, schedule.Remaining)
	})

	t.Run("propagates subscription creation failure", func(t *testing.T) {
		processor := mocks.NewMockProcessorForTest(t)

		processor.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(payment.Product{ExternalID: "prod_monthly"}, nil)
		processor.EXPECT().
			CreatePrice(gomock.Any(), gomock.Any()).
			Return(payment.Price{ExternalID: "price_monthly"}, nil)
		processor.EXPECT().
			CreateSubscription(gomock.Any(), gomock.Any()).
			Return(payment.Subscription{}, fmt.Errorf("no such customer: cus_123"))

		svc := newFinancingService(processor)
		schedule, err := svc.CreateAutopaySchedule(ctx, autopayParams)

		require.Error(t, err)
		assert.Nil(t, schedule)
		assert.Contains(t, err.Error(), "no such customer")
	})
}
