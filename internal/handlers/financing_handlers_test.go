package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fullarch/financing-api/internal/client/payment"
	"github.com/fullarch/financing-api/internal/logger"
	"github.com/fullarch/financing-api/internal/mocks"
	"github.com/fullarch/financing-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	logger.InitLogger("local")
}

func newTestRouter(processor payment.Processor) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewFinancingService(processor, services.NewPlanCalculator(), zap.NewNop())
	handler := NewFinancingHandler(svc)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/create-plan", handler.CreatePlan)
	api.POST("/create-invoice-schedule", handler.CreateInvoiceSchedule)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestFinancingHandler_CreatePlan_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing email",
			body: map[string]interface{}{
				"name":        "Jane Doe",
				"totalFee":    1000,
				"termMonths":  12,
				"downPercent": 0.2,
			},
		},
		{
			name: "missing name",
			body: map[string]interface{}{
				"email":       "jane@example.com",
				"totalFee":    1000,
				"termMonths":  12,
				"downPercent": 0.2,
			},
		},
		{
			name: "null totalFee",
			body: map[string]interface{}{
				"name":        "Jane Doe",
				"email":       "jane@example.com",
				"totalFee":    nil,
				"termMonths":  12,
				"downPercent": 0.2,
			},
		},
		{
			name: "empty body",
			body: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any processor call fails the test.
			processor := mocks.NewMockProcessorForTest(t)
			router := newTestRouter(processor)

			w := postJSON(t, router, "/api/create-plan", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Missing required fields."}`, w.Body.String())
		})
	}
}

func TestFinancingHandler_CreatePlan_ZeroValuesAreValid(t *testing.T) {
	// Presence validation distinguishes null from zero: downPercent 0 is a
	// present value and must reach the orchestrator.
	processor := mocks.NewMockProcessorForTest(t)

	processor.EXPECT().FindCustomerByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
	processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		Return(payment.Customer{ExternalID: "cus_123"}, nil)
	processor.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		Return(payment.Product{ExternalID: "prod_123"}, nil)
	processor.EXPECT().CreatePrice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, price payment.Price) (payment.Price, error) {
			assert.Equal(t, int64(0), price.Amount)
			price.ExternalID = "price_123"
			return price, nil
		})
	processor.EXPECT().CreatePaymentLink(gomock.Any(), "price_123", int64(1)).
		Return(payment.PaymentLink{URL: "https://pay.example.com/plink_123"}, nil)

	router := newTestRouter(processor)
	w := postJSON(t, router, "/api/create-plan", map[string]interface{}{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"totalFee":    1000,
		"termMonths":  12,
		"downPercent": 0,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFinancingHandler_CreatePlan_Success(t *testing.T) {
	processor := mocks.NewMockProcessorForTest(t)

	processor.EXPECT().FindCustomerByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
	processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		Return(payment.Customer{ExternalID: "cus_123"}, nil)
	processor.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		Return(payment.Product{ExternalID: "prod_123"}, nil)
	processor.EXPECT().CreatePrice(gomock.Any(), gomock.Any()).
		Return(payment.Price{ExternalID: "price_123"}, nil)
	processor.EXPECT().CreatePaymentLink(gomock.Any(), "price_123", int64(1)).
		Return(payment.PaymentLink{URL: "https://pay.example.com/plink_123"}, nil)

	router := newTestRouter(processor)
	w := postJSON(t, router, "/api/create-plan", map[string]interface{}{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"totalFee":    1000,
		"termMonths":  12,
		"downPercent": 0.2,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "Plan created", response.Message)
	assert.Equal(t, "cus_123", response.CustomerID)
	assert.Equal(t, 200.0, response.DownPaymentAmount)
	assert.Equal(t, 800.0, response.Remaining)
	assert.Equal(t, 66.67, response.Monthly)
	assert.Equal(t, "https://pay.example.com/plink_123", response.PaymentLinkURL)
}

func TestFinancingHandler_CreatePlan_DownstreamFailure(t *testing.T) {
	processor := mocks.NewMockProcessorForTest(t)

	processor.EXPECT().FindCustomerByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
	processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
		Return(payment.Customer{ExternalID: "cus_123"}, nil).
		Times(1)
	processor.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		Return(payment.Product{ExternalID: "prod_123"}, nil)
	processor.EXPECT().CreatePrice(gomock.Any(), gomock.Any()).
		Return(payment.Price{}, assert.AnError)

	router := newTestRouter(processor)
	w := postJSON(t, router, "/api/create-plan", map[string]interface{}{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"totalFee":    1000,
		"termMonths":  12,
		"downPercent": 0.2,
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Server error", response.Error)
	assert.NotEmpty(t, response.Details)
}

func TestFinancingHandler_CreateInvoiceSchedule_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing customerId",
			body: map[string]interface{}{
				"remaining":  800,
				"termMonths": 12,
			},
		},
		{
			name: "missing remaining",
			body: map[string]interface{}{
				"customerId": "cus_123",
				"termMonths": 12,
			},
		},
		{
			name: "missing termMonths",
			body: map[string]interface{}{
				"customerId": "cus_123",
				"remaining":  800,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := mocks.NewMockProcessorForTest(t)
			router := newTestRouter(processor)

			w := postJSON(t, router, "/api/create-invoice-schedule", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Missing required fields."}`, w.Body.String())
		})
	}
}

func TestFinancingHandler_CreateInvoiceSchedule_Success(t *testing.T) {
	processor := mocks.NewMockProcessorForTest(t)

	processor.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		Return(payment.Product{ExternalID: "prod_monthly"}, nil)
	processor.EXPECT().CreatePrice(gomock.Any(), gomock.Any()).
		Return(payment.Price{ExternalID: "price_monthly"}, nil)
	processor.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
		Return(payment.Subscription{ExternalID: "sub_123", Status: "incomplete"}, nil)

	router := newTestRouter(processor)
	w := postJSON(t, router, "/api/create-invoice-schedule", map[string]interface{}{
		"customerId": "cus_123",
		"remaining":  800,
		"termMonths": 12,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response InvoiceScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "Autopay schedule created", response.Message)
	assert.Equal(t, "sub_123", response.SubscriptionID)
	assert.Equal(t, 67.0, response.AmountMonthly)
	assert.Equal(t, 12, response.TermMonths)
	assert.Equal(t, 800.0, response.Remaining)
}

func TestFinancingHandler_CreateInvoiceSchedule_DownstreamFailure(t *testing.T) {
	processor := mocks.NewMockProcessorForTest(t)

	processor.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		Return(payment.Product{}, assert.AnError)

	router := newTestRouter(processor)
	w := postJSON(t, router, "/api/create-invoice-schedule", map[string]interface{}{
		"customerId": "cus_123",
		"remaining":  800,
		"termMonths": 12,
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Server error", response.Error)
	assert.NotEmpty(t, response.Details)
}
