package routes

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pcg_compliance/internal/config"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/infrastructure/wiring"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *wiring.Container {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, err := wiring.Build(context.Background(), &config.Config{
		Port:            8080,
		StoreBackend:    config.StoreBackendMemory,
		BlobBackend:     config.BlobBackendMemory,
		BlobBucket:      "docs",
		DevCompanies:    []string{"ACME"},
		MaxUploadBytes:  1 << 20,
		AllowedTypes:    []string{"application/pdf"},
		JWTSecret:       []byte("routes-secret"),
		RateLimitRPS:    100,
		RateLimitBurst:  100,
		ShutdownTimeout: time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func bearer(t *testing.T, c *wiring.Container, p auth.Principal) string {
	t.Helper()
	token, err := c.Validator.Issue(p, time.Hour, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter(t *testing.T) {
	c := newTestContainer(t)
	router := NewRouter(c)
	admin := bearer(t, c, auth.Principal{UID: "a", CompanyID: "ACME", Role: auth.RoleAdmin})
	sub := bearer(t, c, auth.Principal{UID: "s", CompanyID: "ACME", Role: auth.RoleSubcontratista, SubcontractorID: "SUB-1"})

	do := func(method, target, authz, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("ping is public and tagged with a request id", func(t *testing.T) {
		w := do(http.MethodGet, "/v1/ping", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("compliance requires a token", func(t *testing.T) {
		w := do(http.MethodGet, "/v1/compliance/periods/ACME_2024-03", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role gates", func(t *testing.T) {
		w := do(http.MethodPost, "/v1/compliance/companies/ACME/process", sub, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		w = do(http.MethodPost, "/v1/compliance/submissions/review", sub, `{}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("calendar then process opens the period", func(t *testing.T) {
		w := do(http.MethodPut, "/v1/compliance/companies/ACME/calendar/2024-03", admin,
			`{"corteCarga":"2024-03-20","limiteRevision":"2024-03-25","fechaPago":"2024-03-28"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = do(http.MethodPost, "/v1/compliance/companies/ACME/process", admin, `{"at":"2024-03-10T06:00:00Z"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"created":true`)

		w = do(http.MethodGet, "/v1/compliance/periods/ACME_2024-03", sub, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Abierto para Carga")

		w = do(http.MethodGet, "/v1/compliance/companies/ACME/calendar/2024", sub, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = do(http.MethodPut, "/v1/compliance/companies/ACME/calendar/2024-03", admin,
			`{"corteCarga":"2024-03-21","limiteRevision":"2024-03-25","fechaPago":"2024-03-28"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("swagger is served", func(t *testing.T) {
		w := do(http.MethodGet, "/swagger/doc.json", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "PCG Compliance API")
	})
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	c := newTestContainer(t)
	c.Config.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, c) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
