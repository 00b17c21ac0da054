package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports/mocks"
	"github.com/brunosilvadev/rinha-2025/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerTestDeps struct {
	router     *gin.Engine
	paymentSvc *mocks.MockPaymentService
	summarySvc *mocks.MockSummaryService
	ctrl       *gomock.Controller
}

func setupHandlers(t *testing.T, checkers ...ports.HealthChecker) *handlerTestDeps {
	ctrl := gomock.NewController(t)
	d := &handlerTestDeps{
		paymentSvc: mocks.NewMockPaymentService(ctrl),
		summarySvc: mocks.NewMockSummaryService(ctrl),
		ctrl:       ctrl,
	}
	d.router = SetupRouter(RouterDeps{
		PaymentSvc:     d.paymentSvc,
		SummarySvc:     d.summarySvc,
		HealthCheckers: checkers,
		Mode:           gin.TestMode,
		Logger:         zerolog.Nop(),
	})
	return d
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// stubChecker is a canned HealthChecker for the deep health endpoint.
type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

// --- Payment Handler Tests ---

func TestProcessPayment_Success(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	correlationID := uuid.New()
	d.paymentSvc.EXPECT().ProcessPayment(gomock.Any(), ports.PaymentRequest{
		CorrelationID: correlationID,
		Amount:        19.90,
	}).Return(&ports.DispatchResult{
		Processor:   domain.ProcessorDefault,
		RequestedAt: time.Now().UTC(),
		Attempts:    1,
	}, nil)

	w := postJSON(d.router, "/payments",
		`{"correlationId":"`+correlationID.String()+`","amount":19.90}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestProcessPayment_MalformedBody(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := postJSON(d.router, "/payments", `{"correlationId":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessPayment_InvalidAmount(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	cases := []string{
		`{"correlationId":"` + uuid.NewString() + `","amount":0}`,
		`{"correlationId":"` + uuid.NewString() + `","amount":-10}`,
		`{"correlationId":"` + uuid.NewString() + `","amount":19.999}`,
	}
	for _, body := range cases {
		w := postJSON(d.router, "/payments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "PAY_002", body)
	}
}

func TestProcessPayment_InvalidCorrelationID(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := postJSON(d.router, "/payments", `{"correlationId":"not-a-uuid","amount":19.90}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PAY_003")
}

func TestProcessPayment_DispatchExhausted(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.paymentSvc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDispatchExhausted(errors.New("both processors down")))

	w := postJSON(d.router, "/payments",
		`{"correlationId":"`+uuid.NewString()+`","amount":5.00}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "PAY_001")
}

// --- Summary Handler Tests ---

func TestGetSummary_ReturnsContractShape(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.summarySvc.EXPECT().Summary(gomock.Any(), nil, nil).Return(&domain.Summary{
		Default:  domain.ProcessorSummary{TotalRequests: 42, TotalAmount: 419.58},
		Fallback: domain.ProcessorSummary{TotalRequests: 7, TotalAmount: 69.93},
	}, nil)

	w := get(d.router, "/payments-summary")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"default":  {"totalRequests": 42, "totalAmount": 419.58},
		"fallback": {"totalRequests": 7,  "totalAmount": 69.93}
	}`, w.Body.String())
}

func TestGetSummary_ForwardsWindow(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	var gotFrom, gotTo *time.Time
	d.summarySvc.EXPECT().Summary(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to *time.Time) (*domain.Summary, error) {
			gotFrom, gotTo = from, to
			return &domain.Summary{}, nil
		})

	w := get(d.router, "/payments-summary?from=2025-07-01T00:00:00Z&to=2025-07-01T12:00:00.000Z")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFrom)
	require.NotNil(t, gotTo)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), gotFrom.UTC())
	assert.Equal(t, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), gotTo.UTC())
}

func TestGetSummary_MalformedInstant(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	for _, path := range []string{
		"/payments-summary?from=yesterday",
		"/payments-summary?to=2025-13-99",
	} {
		w := get(d.router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "SUM_001", path)
	}
}

func TestGetSummary_InvertedRange(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := get(d.router, "/payments-summary?from=2025-07-02T00:00:00Z&to=2025-07-01T00:00:00Z")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SUM_001")
}

func TestGetSummary_RoundsAmounts(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.summarySvc.EXPECT().Summary(gomock.Any(), nil, nil).Return(&domain.Summary{
		Default: domain.ProcessorSummary{TotalRequests: 3, TotalAmount: 19.8999999999},
	}, nil)

	w := get(d.router, "/payments-summary")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalAmount":19.9`)
}

func TestResetSummary(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.summarySvc.EXPECT().Reset(gomock.Any()).Return(nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/payments-summary", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestResetSummary_StoreError(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	d.summarySvc.EXPECT().Reset(gomock.Any()).Return(errors.New("store unreachable"))

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/payments-summary", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_000")
}

// --- Health Handler Tests ---

func TestHealthCheck_Healthy(t *testing.T) {
	d := setupHandlers(t, stubChecker{name: "redis"})
	defer d.ctrl.Finish()

	w := get(d.router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_DegradedDependency(t *testing.T) {
	d := setupHandlers(t, stubChecker{name: "redis", err: errors.New("connection refused")})
	defer d.ctrl.Finish()

	w := get(d.router, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

// --- Router Tests ---

func TestRouter_MetricsExposed(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := get(d.router, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "# HELP")
}

func TestRouter_UnknownRoute(t *testing.T) {
	d := setupHandlers(t)
	defer d.ctrl.Finish()

	w := get(d.router, "/payments/123")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
