package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/ratelimit"
)

type stubLimiter struct {
	allow bool
	err   error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

func newLoginRouter(t *testing.T, limiter ratelimit.Limiter) (*gin.Engine, *auth.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	creds, err := auth.NewCredentials(
		auth.DemoAccount{Username: "Admin", Password: "9800x3d", Role: auth.RoleEmployee},
		auth.DemoAccount{Username: "Customer", Password: "Reservation123!", Role: auth.RoleGuest},
	)
	require.NoError(t, err)

	issuer := auth.NewIssuer("dev-secret", time.Hour)
	logger, _ := test.NewNullLogger()
	h := NewAuthHandler(creds, issuer, limiter, logger)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	return r, issuer
}

func postLogin(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEmployee(t *testing.T) {
	r, issuer := newLoginRouter(t, ratelimit.Noop{})

	w := postLogin(r, `{"username":"Admin","password":"9800x3d"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, auth.RoleEmployee, resp.Role)

	id := issuer.VerifyToken(resp.Token)
	require.NotNil(t, id)
	assert.Equal(t, "Admin", id.Subject)
	assert.Equal(t, auth.RoleEmployee, id.Role)
}

func TestLoginGuest(t *testing.T) {
	r, issuer := newLoginRouter(t, ratelimit.Noop{})

	w := postLogin(r, `{"username":"Customer","password":"Reservation123!"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, auth.RoleGuest, resp.Role)
	assert.Equal(t, auth.RoleGuest, issuer.VerifyToken(resp.Token).Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _ := newLoginRouter(t, ratelimit.Noop{})

	w := postLogin(r, `{"username":"bad","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid credentials", body["error"])
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newLoginRouter(t, ratelimit.Noop{})

	for _, body := range []string{`{}`, `{"username":"Admin"}`, `{"password":"x"}`, `not json`, ``} {
		w := postLogin(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "username and password required", resp["error"])
	}
}

func TestLoginThrottled(t *testing.T) {
	r, _ := newLoginRouter(t, stubLimiter{allow: false})

	w := postLogin(r, `{"username":"Admin","password":"9800x3d"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLoginLimiterFailureDoesNotBlock(t *testing.T) {
	r, _ := newLoginRouter(t, stubLimiter{err: errors.New("redis down")})

	w := postLogin(r, `{"username":"Admin","password":"9800x3d"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
