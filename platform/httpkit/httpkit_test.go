package httpkit

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tapquote_backend/platform/apperr"
	"tapquote_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDAssignsAndEchoes(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	var seen string
	engine.GET("/", func(c *gin.Context) {
		seen = c.GetString(ContextRequestIDKey)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(HeaderRequestID) != seen {
		t.Fatalf("expected generated request id to be echoed, got %q / %q", seen, rec.Header().Get(HeaderRequestID))
	}

	const inbound = "9b2f1a52-6c0e-4c61-9a3e-0b7f5e0d6a11"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, inbound)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if seen != inbound {
		t.Fatalf("expected inbound id to be reused, got %q", seen)
	}
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.001), 2, logger.Discard())
	engine := gin.New()
	engine.POST("/x", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}

func TestHandleErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.NotFound("material not found"), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", apperr.Validation("bad")), http.StatusBadRequest},
		{apperr.Unavailable("model output unusable", errors.New("eof")), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		if !HandleError(c, tc.err) {
			t.Fatalf("expected error to be handled")
		}
		if rec.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, rec.Code)
		}
		if StatusFor(tc.err) != tc.want {
			t.Fatalf("StatusFor(%v) disagrees with HandleError", tc.err)
		}
	}
}
