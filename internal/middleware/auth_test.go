package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/randompkg"
	"github.com/friendbank/friendbank/pkg/tokenpkg"
	"github.com/friendbank/friendbank/pkg/web"
)

func TestAuthMiddleware(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	userID := randompkg.IntBetween(1, 100)
	username := randompkg.Username()

	testCases := []struct {
		name           string
		setupAuth      func(t *testing.T, request *http.Request)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "NoAuthorization",
			setupAuth: func(t *testing.T, request *http.Request) {
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "authorization header is not provided",
		},
		{
			name: "InvalidAuthorizationHeader",
			setupAuth: func(t *testing.T, request *http.Request) {
				AddAuthorization(t, request, tokenMaker, "", userID, username, domain.RoleRegular, time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid authorization header format",
		},
		{
			name: "UnsupportedAuthorization",
			setupAuth: func(t *testing.T, request *http.Request) {
				AddAuthorization(t, request, tokenMaker, "unsupported", userID, username, domain.RoleRegular, time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unsupported authorization type unsupported",
		},
		{
			name: "ExpiredToken",
			setupAuth: func(t *testing.T, request *http.Request) {
				AddAuthorization(t, request, tokenMaker, AuthTypeBearer, userID, username, domain.RoleRegular, -time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      tokenpkg.ErrExpiredToken.Error(),
		},
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request) {
				AddAuthorization(t, request, tokenMaker, AuthTypeBearer, userID, username, domain.RoleRegular, time.Minute)
			},
			wantStatusCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			authPath := "/auth"
			server.GET(authPath, AuthMiddleware(tokenMaker), func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{})
			})

			request, err := http.NewRequest(http.MethodGet, authPath, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var got web.Response
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}

func TestAccountantOnly(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	userID := randompkg.IntBetween(1, 100)
	username := randompkg.Username()

	testCases := []struct {
		name           string
		role           domain.Role
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "RegularForbidden",
			role:           domain.RoleRegular,
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrAccountantRequired.Error(),
		},
		{
			name:           "AccountantAllowed",
			role:           domain.RoleAccountant,
			wantStatusCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			authPath := "/auth"
			server.GET(authPath, AuthMiddleware(tokenMaker), AccountantOnly(), func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{})
			})

			request, err := http.NewRequest(http.MethodGet, authPath, nil)
			require.NoError(t, err)

			AddAuthorization(t, request, tokenMaker, AuthTypeBearer, userID, username, tc.role, time.Minute)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var got web.Response
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}
