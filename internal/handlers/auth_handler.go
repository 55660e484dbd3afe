package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	"github.com/BruksfildServices01/table-reservations/internal/ratelimit"
)

type AuthHandler struct {
	credentials *auth.Credentials
	issuer      *auth.Issuer
	limiter     ratelimit.Limiter
	log         logrus.FieldLogger
}

func NewAuthHandler(
	credentials *auth.Credentials,
	issuer *auth.Issuer,
	limiter ratelimit.Limiter,
	log logrus.FieldLogger,
) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		issuer:      issuer,
		limiter:     limiter,
		log:         log,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	Role  auth.Role `json:"role"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)

	if req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "invalid_request", "username and password required")
		return
	}

	ok, err := h.limiter.Allow(c.Request.Context(), req.Username)
	if err != nil {
		// a broken limiter must not lock everybody out
		h.log.WithError(err).Warn("login limiter unavailable")
	} else if !ok {
		h.log.WithField("username", req.Username).Warn("login attempts throttled")
		httperr.TooManyRequests(c, "too_many_attempts", "too many login attempts")
		return
	}

	role, err := h.credentials.Authenticate(req.Username, req.Password)
	if err != nil {
		h.log.WithField("username", req.Username).Warn("failed login attempt")
		httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "invalid credentials")
		return
	}

	token, err := h.issuer.IssueToken(req.Username, role)
	if err != nil {
		h.log.WithError(err).Error("failed to sign token")
		httperr.Internal(c, "failed_to_generate_token", "failed to generate token")
		return
	}

	httpresp.OK(c, LoginResponse{Token: token, Role: role})
}
