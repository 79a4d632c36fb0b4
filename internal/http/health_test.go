package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/signcraft/sheet-pricing-service/internal/circuitbreaker"
)

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	handler := NewHealthHandler()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setupHandler   func() *HealthHandler
		expectedStatus int
		mustContain    []string
	}{
		{
			name: "readiness check no checkers",
			setupHandler: func() *HealthHandler {
				return NewHealthHandler()
			},
			expectedStatus: http.StatusOK,
			mustContain:    []string{`"service":"ok"`},
		},
		{
			name: "readiness check with healthy checker",
			setupHandler: func() *HealthHandler {
				handler := NewHealthHandler()
				handler.RegisterChecker("mongodb", HealthCheckerFunc(func(ctx context.Context) error {
					return nil
				}))
				return handler
			},
			expectedStatus: http.StatusOK,
			mustContain:    []string{`"mongodb":"ok"`},
		},
		{
			name: "readiness check with failing checker",
			setupHandler: func() *HealthHandler {
				handler := NewHealthHandler()
				handler.RegisterChecker("mongodb", HealthCheckerFunc(func(ctx context.Context) error {
					return errors.New("connection refused")
				}))
				return handler
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    []string{"degraded", "connection refused"},
		},
		{
			name: "readiness check with healthy circuit breaker",
			setupHandler: func() *HealthHandler {
				handler := NewHealthHandler()
				cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
				handler.RegisterCircuitBreaker("mongodb_materials", cb)
				return handler
			},
			expectedStatus: http.StatusOK,
			mustContain:    []string{`"mongodb_materials_circuit":"closed"`},
		},
		{
			name: "readiness check with open circuit breaker",
			setupHandler: func() *HealthHandler {
				handler := NewHealthHandler()
				cb := circuitbreaker.New(circuitbreaker.Config{
					FailureThreshold: 1,
					SuccessThreshold: 1,
					Timeout:          circuitbreaker.DefaultConfig().Timeout,
					Name:             "test",
				})
				_ = cb.Execute(context.Background(), func() error {
					return errors.New("boom")
				})
				handler.RegisterCircuitBreaker("mongodb_materials", cb)
				return handler
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    []string{`"mongodb_materials_circuit":"open"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler := tt.setupHandler()
			handler.Register(router)

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}
