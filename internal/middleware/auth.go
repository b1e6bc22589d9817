// Package middleware provides gin middleware for authentication and logging.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/tokenpkg"
	"github.com/friendbank/friendbank/pkg/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Keys used to pass authorization data through gin.
const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "authorization_payload"
)

// AddAuthorization creates a token and sets the request authorization header.
// It is shared by the delivery layer tests.
func AddAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authType string,
	userID int32,
	username string,
	role domain.Role,
	duration time.Duration,
) {
	t.Helper()

	token, _, err := tokenMaker.CreateToken(userID, username, string(role), duration)
	require.NoError(t, err)

	request.Header.Set(AuthHeaderKey, fmt.Sprintf("%s %s", authType, token))
}

// AuthMiddleware verifies the bearer token and stores its payload in the
// gin context under AuthPayloadKey.
func AuthMiddleware(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		authType := strings.ToLower(fields[0])
		if authType != AuthTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		accessToken := fields[1]

		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		ctx.Set(AuthPayloadKey, payload)
		ctx.Next()
	}
}

// AccountantOnly rejects requests whose token does not carry the accountant
// role. It must run after AuthMiddleware.
func AccountantOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := ctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)

		if domain.Role(payload.Role) != domain.RoleAccountant {
			ctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(domain.ErrAccountantRequired))
			return
		}

		ctx.Next()
	}
}
