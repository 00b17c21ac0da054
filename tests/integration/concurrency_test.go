package integration

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentPayments verifies summary consistency under concurrent load:
// every acknowledged payment is counted exactly once, and the counted amount
// matches what the processors accepted. Counter increments go through a
// MULTI/EXEC pipeline, so requests and amounts never drift apart.
func TestConcurrentPayments(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.primary.reportHealth(false, 50)
	app.fallback.reportHealth(false, 50)

	concurrency := 100
	amount := 10.00

	var wg sync.WaitGroup
	var accepted atomic.Int64
	var rejected atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if postPayment(app, amount) == http.StatusOK {
				accepted.Add(1)
			} else {
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	t.Logf("Concurrent payments: %d accepted, %d rejected (out of %d)", accepted.Load(), rejected.Load(), concurrency)
	require.Equal(t, int64(concurrency), accepted.Load(), "a healthy default should absorb the full load")

	// A healthy, fast default takes everything; nothing leaks to the
	// fallback and nothing is double-counted.
	sum := app.summary(t)
	assert.Equal(t, int64(concurrency), sum.Default.TotalRequests)
	assert.InDelta(t, float64(concurrency)*amount, sum.Default.TotalAmount, 0.001)
	assert.Equal(t, int64(0), sum.Fallback.TotalRequests)

	assert.Equal(t, int64(concurrency), app.primary.paymentCount())
	assert.Equal(t, int64(0), app.fallback.paymentCount())
}

// TestConcurrentPayments_FailingDefault drives concurrent traffic into a
// rejecting default processor. Every request must still be acknowledged via
// the fallback, and the summary must count fallback successes only.
//
// Breaker updates are read-modify-write without locks, so concurrent failures
// may lose increments and the threshold crossing can shift by a few requests.
// The assertions below pin the safety properties, not an exact failure count.
func TestConcurrentPayments_FailingDefault(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.primary.respondWith(http.StatusInternalServerError)

	concurrency := 20

	var wg sync.WaitGroup
	var accepted atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if postPayment(app, 10.00) == http.StatusOK {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(concurrency), accepted.Load(), "fallback should rescue every dispatch")

	sum := app.summary(t)
	assert.Equal(t, int64(0), sum.Default.TotalRequests, "rejected attempts must not be counted")
	assert.Equal(t, int64(concurrency), sum.Fallback.TotalRequests)

	// Each dispatch posts to the fallback exactly once. The default sees
	// between five posts (the minimum needed to trip the breaker) and one
	// per request (if the breaker never trips mid-flight).
	assert.Equal(t, int64(concurrency), app.fallback.paymentCount())
	primaryPosts := app.primary.paymentCount()
	t.Logf("Default processor posts: %d (out of %d requests)", primaryPosts, concurrency)
	assert.GreaterOrEqual(t, primaryPosts, int64(5))
	assert.LessOrEqual(t, primaryPosts, int64(concurrency))

	rec := app.breakerRecord(t, domain.ProcessorDefault)
	assert.True(t, rec.State == domain.CircuitOpen || rec.FailureCount >= 1,
		"breaker should have registered the failures, got %+v", rec)
}

// TestConcurrentPayments_RepeatedCorrelationID pins down that the gateway
// does not deduplicate: an upstream acknowledgment is an accounting event,
// and filtering repeated correlation IDs is the processors' concern.
func TestConcurrentPayments_RepeatedCorrelationID(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.primary.reportHealth(false, 50)

	concurrency := 10
	body := fmt.Sprintf(`{"correlationId":%q,"amount":5.50}`, uuid.New().String())

	var wg sync.WaitGroup
	var accepted atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(app.server.URL+"/payments", "application/json", bytes.NewBufferString(body))
			if err != nil {
				return
			}
			defer resp.Body.Close()
			_, _ = io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusOK {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(concurrency), accepted.Load())

	sum := app.summary(t)
	assert.Equal(t, int64(concurrency), sum.Default.TotalRequests, "every acknowledgment counts, repeats included")
	assert.InDelta(t, 55.00, sum.Default.TotalAmount, 0.001)
}

// postPayment fires one payment with a fresh correlation ID and returns the
// status code, or zero on transport errors. Unlike submitPayment it never
// touches testing.T, so it is safe on bare goroutines.
func postPayment(app *testApp, amount float64) int {
	body := fmt.Sprintf(`{"correlationId":%q,"amount":%v}`, uuid.New().String(), amount)
	resp, err := http.Post(app.server.URL+"/payments", "application/json", bytes.NewBufferString(body))
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body)
	return resp.StatusCode
}
