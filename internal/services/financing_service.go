package services

import (
	"context"
	"fmt"

	"github.com/fullarch/financing-api/internal/client/payment"
	"github.com/fullarch/financing-api/internal/constants"
	"github.com/fullarch/financing-api/internal/types/api/params"
	"github.com/fullarch/financing-api/internal/types/api/responses"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FinancingService orchestrates financing plans against the external payment
// processor. It holds no state of its own: the processor is the system of
// record for customers, prices and subscriptions, and every call is a plain
// sequence of remote creates with no compensation. If a later step fails,
// earlier ones (a created customer, product or price) are left in place.
type FinancingService struct {
	processor  payment.Processor
	calculator *PlanCalculator
	logger     *zap.Logger
}

// NewFinancingService creates a new financing service
func NewFinancingService(processor payment.Processor, calculator *PlanCalculator, logger *zap.Logger) *FinancingService {
	return &FinancingService{
		processor:  processor,
		calculator: calculator,
		logger:     logger,
	}
}

// CreatePlan resolves (or creates) the customer, computes the plan split and
// creates a payment link for the down payment.
func (s *FinancingService) CreatePlan(ctx context.Context, p params.PlanCreateParams) (*responses.PlanResponse, error) {
	customer, err := s.resolveCustomer(ctx, p.Name, p.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve customer")
	}

	breakdown := s.calculator.CalculatePlan(p.TotalFee, p.TermMonths, p.DownPercent)

	product, err := s.processor.CreateProduct(ctx, payment.Product{
		Name: fmt.Sprintf("Down Payment - %s", p.Name),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create down payment product")
	}

	price, err := s.processor.CreatePrice(ctx, payment.Price{
		ProductID: product.ExternalID,
		Amount:    int64(breakdown.DownPaymentAmount * 100),
		Currency:  constants.DefaultCurrency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create down payment price")
	}

	link, err := s.processor.CreatePaymentLink(ctx, price.ExternalID, 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment link")
	}

	s.logger.Info("Created financing plan",
		zap.String("customer_id", customer.ExternalID),
		zap.Float64("down_payment", breakdown.DownPaymentAmount),
		zap.Float64("remaining", breakdown.Remaining),
		zap.Int("term_months", p.TermMonths),
		zap.String("payment_link", link.URL))

	return &responses.PlanResponse{
		CustomerID:        customer.ExternalID,
		DownPaymentAmount: breakdown.DownPaymentAmount,
		Remaining:         breakdown.Remaining,
		Monthly:           breakdown.Monthly,
		PaymentLinkURL:    link.URL,
	}, nil
}

// CreateAutopaySchedule creates the recurring monthly subscription that pays
// down the remaining balance. The monthly amount is rounded up to the next
// whole currency unit; see PlanCalculator.CalculateAutopayMonthly.
//
// The customer ID is passed through to the processor unverified; an unknown
// ID surfaces as a downstream error from the subscription create.
func (s *FinancingService) CreateAutopaySchedule(ctx context.Context, p params.AutopayCreateParams) (*responses.InvoiceScheduleResponse, error) {
	monthly := s.calculator.CalculateAutopayMonthly(p.Remaining, p.TermMonths)

	product, err := s.processor.CreateProduct(ctx, payment.Product{
		Name: fmt.Sprintf("Monthly Plan (%d months)", p.TermMonths),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create monthly plan product")
	}

	price, err := s.processor.CreatePrice(ctx, payment.Price{
		ProductID: product.ExternalID,
		Amount:    int64(monthly * 100),
		Currency:  constants.DefaultCurrency,
		Recurring: &payment.RecurringInterval{
			Interval:      "month",
			IntervalCount: 1,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recurring price")
	}

	subscription, err := s.processor.CreateSubscription(ctx, payment.Subscription{
		CustomerID: p.CustomerID,
		Items: []payment.SubscriptionItem{
			{PriceID: price.ExternalID, Quantity: 1},
		},
		PaymentBehavior:          "default_incomplete",
		SaveDefaultPaymentMethod: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	s.logger.Info("Created autopay schedule",
		zap.String("customer_id", p.CustomerID),
		zap.String("subscription_id", subscription.ExternalID),
		zap.Float64("monthly", monthly),
		zap.Int("term_months", p.TermMonths))

	return &responses.InvoiceScheduleResponse{
		SubscriptionID: subscription.ExternalID,
		AmountMonthly:  monthly,
		TermMonths:     p.TermMonths,
		Remaining:      p.Remaining,
	}, nil
}

// resolveCustomer reuses an existing processor customer with the same email
// or creates one tagged with the financing-form source label. Duplicate
// creation races between concurrent requests are the processor's problem to
// serialize; this service keeps no local customer state.
func (s *FinancingService) resolveCustomer(ctx context.Context, name, email string) (payment.Customer, error) {
	existing, err := s.processor.FindCustomerByEmail(ctx, email)
	if err != nil {
		return payment.Customer{}, err
	}
	if existing != nil {
		s.logger.Info("Reusing existing customer",
			zap.String("customer_id", existing.ExternalID),
			zap.String("email", email))
		return *existing, nil
	}

	created, err := s.processor.CreateCustomer(ctx, payment.Customer{
		Name:  name,
		Email: email,
		Metadata: map[string]string{
			"source": constants.CustomerSourceTag,
		},
	})
	if err != nil {
		return payment.Customer{}, err
	}
	return created, nil
}
